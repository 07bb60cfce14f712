package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/BenTran203/AI-Dashboard-analytics/infrastructure/database/postgres"
	"github.com/BenTran203/AI-Dashboard-analytics/internal/domain"
	"github.com/BenTran203/AI-Dashboard-analytics/pkg/utils"
)

const (
	aiInsightsTable = "ai_insights ai"
)

// AIInsightRepository stores generated narratives. Rows are append-only:
// Save always inserts, the cache policy on top decides which row wins a
// lookup.
type AIInsightRepository interface {
	FindRecent(periodType, language string, since time.Time) ([]*domain.CachedInsight, error)
	Save(insight *domain.CachedInsight) error
	DeleteOlderThan(days int) (int64, error)
}

type aiInsightRepository struct {
	conn *postgres.Connection
}

func NewAIInsightRepository(conn *postgres.Connection) AIInsightRepository {
	return &aiInsightRepository{
		conn: conn,
	}
}

// FindRecent returns the candidate rows for a cache lookup: same period
// type and language, created at or after since, newest first. Window
// tolerance matching happens in the caller, not in SQL.
func (r *aiInsightRepository) FindRecent(periodType, language string, since time.Time) ([]*domain.CachedInsight, error) {
	query, args, err := squirrel.
		Select("ai.id, ai.period_type, ai.language, ai.start_date, ai.end_date, ai.narrative, ai.metrics_snapshot, ai.created_at").
		From(aiInsightsTable).
		Where(squirrel.Eq{"ai.period_type": periodType, "ai.language": language}).
		Where(squirrel.GtOrEq{"ai.created_at": since.UTC()}).
		OrderBy("ai.created_at DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building insights query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return []*domain.CachedInsight{}, nil
		}
		return nil, fmt.Errorf("querying cached insights: %w", err)
	}
	defer rows.Close()

	insights := make([]*domain.CachedInsight, 0)
	for rows.Next() {
		insight, err := scanInsight(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning cached insight: %w", err)
		}
		insights = append(insights, insight)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating insight rows: %w", err)
	}

	return insights, nil
}

func (r *aiInsightRepository) Save(insight *domain.CachedInsight) error {
	if insight.ID == "" {
		id, err := utils.GenerateID()
		if err != nil {
			return fmt.Errorf("generating insight ID: %w", err)
		}
		insight.ID = id
	}

	narrativeJSON, err := json.Marshal(insight.Narrative)
	if err != nil {
		return fmt.Errorf("serializing narrative to JSON: %w", err)
	}

	var snapshotJSON []byte
	if insight.MetricsSnapshot != nil {
		snapshotJSON, err = json.Marshal(insight.MetricsSnapshot)
		if err != nil {
			return fmt.Errorf("serializing metrics snapshot to JSON: %w", err)
		}
	}

	query, args, err := squirrel.StatementBuilder.
		Insert("ai_insights").
		Columns("id", "period_type", "language", "start_date", "end_date", "narrative", "metrics_snapshot").
		Values(
			insight.ID,
			insight.PeriodType,
			insight.Language,
			insight.StartDate.UTC(),
			insight.EndDate.UTC(),
			narrativeJSON,
			snapshotJSON,
		).
		Suffix("RETURNING created_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("building insert query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)
	if err := row.Scan(&insight.CreatedAt); err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("database error: %w (code: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("inserting cached insight: %w", err)
	}
	insight.CreatedAt = insight.CreatedAt.UTC()

	return nil
}

// DeleteOlderThan purges insight rows past the retention horizon. The
// lookup policy never returns them anyway; this only keeps the table from
// growing without bound.
func (r *aiInsightRepository) DeleteOlderThan(days int) (int64, error) {
	cutoff := time.Now().UTC().AddDate(0, 0, -days)

	query, args, err := squirrel.
		Delete("ai_insights").
		Where(squirrel.Lt{"created_at": cutoff}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("building delete query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return 0, fmt.Errorf("deleting old insights: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("reading affected rows: %w", err)
	}

	return rowsAffected, nil
}

func scanInsight(rows *sql.Rows) (*domain.CachedInsight, error) {
	insight := &domain.CachedInsight{}
	var narrativeJSON, snapshotJSON []byte

	err := rows.Scan(
		&insight.ID,
		&insight.PeriodType,
		&insight.Language,
		&insight.StartDate,
		&insight.EndDate,
		&narrativeJSON,
		&snapshotJSON,
		&insight.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	insight.StartDate = insight.StartDate.UTC()
	insight.EndDate = insight.EndDate.UTC()
	insight.CreatedAt = insight.CreatedAt.UTC()

	if narrativeJSON != nil {
		narrative := &domain.Narrative{}
		if err := json.Unmarshal(narrativeJSON, narrative); err != nil {
			return nil, fmt.Errorf("deserializing narrative JSON: %w", err)
		}
		insight.Narrative = narrative
	}

	if snapshotJSON != nil {
		snapshot := &domain.MetricsSnapshot{}
		if err := json.Unmarshal(snapshotJSON, snapshot); err != nil {
			return nil, fmt.Errorf("deserializing metrics snapshot JSON: %w", err)
		}
		insight.MetricsSnapshot = snapshot
	}

	return insight, nil
}
