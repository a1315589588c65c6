package repository

import (
	"database/sql"
	"encoding/json"

	"ai-marketing-api/logger"
	"ai-marketing-api/model"

	"github.com/sirupsen/logrus"
)

// ICampaignRepository defines the contract for campaign database operations.
type ICampaignRepository interface {
	Create(campaign *model.Campaign) error
	GetByID(id, userID int) (*model.Campaign, error)
	ListByUserID(userID int) ([]*model.Campaign, error)
	ListActiveByUserID(userID int) ([]*model.Campaign, error)
	Update(campaign *model.Campaign) error
	UpdateStrategy(id, userID int, strategy json.RawMessage) error
	Delete(id, userID int) error
	Stats(userID int) (*model.CampaignStats, error)
}

type CampaignRepository struct {
	DB *sql.DB
}

func NewCampaignRepository(db *sql.DB) *CampaignRepository {
	return &CampaignRepository{DB: db}
}

const campaignColumns = `id, user_id, name, description, goal, budget, target_audience, channels, status, start_date, end_date, strategy, created_at, updated_at`

func scanCampaign(row interface{ Scan(...any) error }) (*model.Campaign, error) {
	c := &model.Campaign{}
	var channels string
	var startDate, endDate, strategy sql.NullString
	err := row.Scan(&c.ID, &c.UserID, &c.Name, &c.Description, &c.Goal, &c.Budget,
		&c.TargetAudience, &channels, &c.Status, &startDate, &endDate, &strategy,
		&c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(channels), &c.Channels); err != nil {
		c.Channels = []model.Channel{}
	}
	c.StartDate = startDate.String
	c.EndDate = endDate.String
	if strategy.Valid {
		c.Strategy = json.RawMessage(strategy.String)
	}
	return c, nil
}

func (r *CampaignRepository) Create(campaign *model.Campaign) error {
	log := logger.Log.WithFields(logrus.Fields{
		"user_id": campaign.UserID,
		"name":    campaign.Name,
	})
	log.Info("Executing query to create a new campaign")

	channels, _ := json.Marshal(campaign.Channels)
	query := `INSERT INTO campaigns (user_id, name, description, goal, budget, target_audience, channels, status, start_date, end_date)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) RETURNING id, created_at, updated_at`
	err := r.DB.QueryRow(query, campaign.UserID, campaign.Name, campaign.Description,
		campaign.Goal, campaign.Budget, campaign.TargetAudience, string(channels),
		campaign.Status, nullIfEmpty(campaign.StartDate), nullIfEmpty(campaign.EndDate)).
		Scan(&campaign.ID, &campaign.CreatedAt, &campaign.UpdatedAt)
	if err != nil {
		log.WithError(err).Error("Failed to execute create campaign query")
		return err
	}
	return nil
}

// GetByID only returns a campaign owned by userID; a row owned by anyone
// else behaves exactly like a missing row.
func (r *CampaignRepository) GetByID(id, userID int) (*model.Campaign, error) {
	query := `SELECT ` + campaignColumns + ` FROM campaigns WHERE id = $1 AND user_id = $2`
	return scanCampaign(r.DB.QueryRow(query, id, userID))
}

func (r *CampaignRepository) ListByUserID(userID int) ([]*model.Campaign, error) {
	query := `SELECT ` + campaignColumns + ` FROM campaigns WHERE user_id = $1 ORDER BY created_at DESC`
	return r.list(query, userID)
}

// ListActiveByUserID returns campaigns that the calendar generator should
// plan around.
func (r *CampaignRepository) ListActiveByUserID(userID int) ([]*model.Campaign, error) {
	query := `SELECT ` + campaignColumns + ` FROM campaigns WHERE user_id = $1 AND status IN ('active', 'scheduled') ORDER BY created_at DESC`
	return r.list(query, userID)
}

func (r *CampaignRepository) list(query string, userID int) ([]*model.Campaign, error) {
	rows, err := r.DB.Query(query, userID)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to execute list campaigns query")
		return nil, err
	}
	defer rows.Close()

	campaigns := []*model.Campaign{}
	for rows.Next() {
		c, err := scanCampaign(rows)
		if err != nil {
			return nil, err
		}
		campaigns = append(campaigns, c)
	}
	return campaigns, rows.Err()
}

func (r *CampaignRepository) Update(campaign *model.Campaign) error {
	channels, _ := json.Marshal(campaign.Channels)
	query := `UPDATE campaigns SET name=$1, description=$2, goal=$3, budget=$4, target_audience=$5,
	          channels=$6, status=$7, start_date=$8, end_date=$9, updated_at=now()
	          WHERE id = $10 AND user_id = $11 RETURNING updated_at`
	err := r.DB.QueryRow(query, campaign.Name, campaign.Description, campaign.Goal,
		campaign.Budget, campaign.TargetAudience, string(channels), campaign.Status,
		nullIfEmpty(campaign.StartDate), nullIfEmpty(campaign.EndDate),
		campaign.ID, campaign.UserID).Scan(&campaign.UpdatedAt)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to execute update campaign query")
		return err
	}
	return nil
}

func (r *CampaignRepository) UpdateStrategy(id, userID int, strategy json.RawMessage) error {
	query := `UPDATE campaigns SET strategy = $1, updated_at = now() WHERE id = $2 AND user_id = $3`
	_, err := r.DB.Exec(query, string(strategy), id, userID)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to execute update campaign strategy query")
	}
	return err
}

func (r *CampaignRepository) Delete(id, userID int) error {
	res, err := r.DB.Exec(`DELETE FROM campaigns WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to execute delete campaign query")
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *CampaignRepository) Stats(userID int) (*model.CampaignStats, error) {
	stats := &model.CampaignStats{}
	query := `SELECT COUNT(*),
	                 COUNT(*) FILTER (WHERE status = 'active'),
	                 COUNT(*) FILTER (WHERE status = 'draft'),
	                 COUNT(*) FILTER (WHERE status = 'scheduled')
	          FROM campaigns WHERE user_id = $1`
	err := r.DB.QueryRow(query, userID).Scan(&stats.Total, &stats.Active, &stats.Draft, &stats.Scheduled)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to execute campaign stats query")
		return nil, err
	}
	return stats, nil
}

func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}
