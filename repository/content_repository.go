package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"ai-marketing-api/logger"
	"ai-marketing-api/model"
)

// ContentFilter narrows a content listing. Zero values mean no filter.
type ContentFilter struct {
	Channel    string
	Status     string
	CampaignID int
}

// IContentRepository defines the contract for content item database operations.
type IContentRepository interface {
	Create(item *model.ContentItem) error
	GetByID(id, userID int) (*model.ContentItem, error)
	List(userID int, filter ContentFilter) ([]*model.ContentItem, error)
	Update(item *model.ContentItem) error
	Publish(id, userID int, publishedAt string) error
	Delete(id, userID int) error
}

type ContentRepository struct {
	DB *sql.DB
}

func NewContentRepository(db *sql.DB) *ContentRepository {
	return &ContentRepository{DB: db}
}

const contentColumns = `id, user_id, campaign_id, channel, content_type, title, body, tone, hashtags, status, scheduled_at, published_at, engagement_score, created_at, updated_at`

func scanContentItem(row interface{ Scan(...any) error }) (*model.ContentItem, error) {
	item := &model.ContentItem{}
	var campaignID sql.NullInt64
	var hashtags string
	var scheduledAt, publishedAt sql.NullString
	err := row.Scan(&item.ID, &item.UserID, &campaignID, &item.Channel, &item.ContentType,
		&item.Title, &item.Body, &item.Tone, &hashtags, &item.Status,
		&scheduledAt, &publishedAt, &item.EngagementScore, &item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if campaignID.Valid {
		id := int(campaignID.Int64)
		item.CampaignID = &id
	}
	if err := json.Unmarshal([]byte(hashtags), &item.Hashtags); err != nil {
		item.Hashtags = []string{}
	}
	item.ScheduledAt = scheduledAt.String
	item.PublishedAt = publishedAt.String
	return item, nil
}

func (r *ContentRepository) Create(item *model.ContentItem) error {
	hashtags, _ := json.Marshal(item.Hashtags)
	query := `INSERT INTO content_items (user_id, campaign_id, channel, content_type, title, body, tone, hashtags, status, scheduled_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) RETURNING id, engagement_score, created_at, updated_at`
	err := r.DB.QueryRow(query, item.UserID, item.CampaignID, item.Channel, item.ContentType,
		item.Title, item.Body, item.Tone, string(hashtags), item.Status, nullIfEmpty(item.ScheduledAt)).
		Scan(&item.ID, &item.EngagementScore, &item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to execute create content query")
		return err
	}
	return nil
}

func (r *ContentRepository) GetByID(id, userID int) (*model.ContentItem, error) {
	query := `SELECT ` + contentColumns + ` FROM content_items WHERE id = $1 AND user_id = $2`
	return scanContentItem(r.DB.QueryRow(query, id, userID))
}

func (r *ContentRepository) List(userID int, filter ContentFilter) ([]*model.ContentItem, error) {
	query := `SELECT ` + contentColumns + ` FROM content_items WHERE user_id = $1`
	args := []any{userID}
	if filter.Channel != "" {
		args = append(args, filter.Channel)
		query += fmt.Sprintf(" AND channel = $%d", len(args))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		query += fmt.Sprintf(" AND status = $%d", len(args))
	}
	if filter.CampaignID != 0 {
		args = append(args, filter.CampaignID)
		query += fmt.Sprintf(" AND campaign_id = $%d", len(args))
	}
	query += " ORDER BY created_at DESC"

	rows, err := r.DB.Query(query, args...)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to execute list content query")
		return nil, err
	}
	defer rows.Close()

	items := []*model.ContentItem{}
	for rows.Next() {
		item, err := scanContentItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *ContentRepository) Update(item *model.ContentItem) error {
	hashtags, _ := json.Marshal(item.Hashtags)
	query := `UPDATE content_items SET title=$1, body=$2, tone=$3, hashtags=$4, status=$5, scheduled_at=$6, updated_at=now()
	          WHERE id = $7 AND user_id = $8 RETURNING updated_at`
	err := r.DB.QueryRow(query, item.Title, item.Body, item.Tone, string(hashtags),
		item.Status, nullIfEmpty(item.ScheduledAt), item.ID, item.UserID).Scan(&item.UpdatedAt)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to execute update content query")
		return err
	}
	return nil
}

func (r *ContentRepository) Publish(id, userID int, publishedAt string) error {
	query := `UPDATE content_items SET status = 'published', published_at = $1, updated_at = now() WHERE id = $2 AND user_id = $3`
	res, err := r.DB.Exec(query, publishedAt, id, userID)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to execute publish content query")
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *ContentRepository) Delete(id, userID int) error {
	res, err := r.DB.Exec(`DELETE FROM content_items WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to execute delete content query")
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
