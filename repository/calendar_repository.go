package repository

import (
	"database/sql"
	"fmt"

	"ai-marketing-api/logger"
	"ai-marketing-api/model"
)

// ICalendarRepository defines the contract for calendar event database operations.
type ICalendarRepository interface {
	Create(event *model.CalendarEvent) error
	GetByID(id, userID int) (*model.CalendarEvent, error)
	ListByMonth(userID, month, year int) ([]*model.CalendarEvent, error)
	Update(event *model.CalendarEvent) error
	Delete(id, userID int) error
	DeleteMonth(userID, month, year int) error
}

type CalendarRepository struct {
	DB *sql.DB
}

func NewCalendarRepository(db *sql.DB) *CalendarRepository {
	return &CalendarRepository{DB: db}
}

const eventColumns = `id, user_id, campaign_id, content_id, title, description, event_date, event_time, channel, status, color, created_at`

// monthPrefix matches event_date values stored as YYYY-MM-DD strings.
func monthPrefix(month, year int) string {
	return fmt.Sprintf("%04d-%02d-%%", year, month)
}

func scanEvent(row interface{ Scan(...any) error }) (*model.CalendarEvent, error) {
	e := &model.CalendarEvent{}
	var campaignID, contentID sql.NullInt64
	err := row.Scan(&e.ID, &e.UserID, &campaignID, &contentID, &e.Title, &e.Description,
		&e.EventDate, &e.EventTime, &e.Channel, &e.Status, &e.Color, &e.CreatedAt)
	if err != nil {
		return nil, err
	}
	if campaignID.Valid {
		id := int(campaignID.Int64)
		e.CampaignID = &id
	}
	if contentID.Valid {
		id := int(contentID.Int64)
		e.ContentID = &id
	}
	return e, nil
}

func (r *CalendarRepository) Create(event *model.CalendarEvent) error {
	query := `INSERT INTO calendar_events (user_id, campaign_id, content_id, title, description, event_date, event_time, channel, status, color)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) RETURNING id, created_at`
	err := r.DB.QueryRow(query, event.UserID, event.CampaignID, event.ContentID, event.Title,
		event.Description, event.EventDate, event.EventTime, event.Channel, event.Status, event.Color).
		Scan(&event.ID, &event.CreatedAt)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to execute create calendar event query")
		return err
	}
	return nil
}

func (r *CalendarRepository) GetByID(id, userID int) (*model.CalendarEvent, error) {
	query := `SELECT ` + eventColumns + ` FROM calendar_events WHERE id = $1 AND user_id = $2`
	return scanEvent(r.DB.QueryRow(query, id, userID))
}

func (r *CalendarRepository) ListByMonth(userID, month, year int) ([]*model.CalendarEvent, error) {
	query := `SELECT ` + eventColumns + ` FROM calendar_events
	          WHERE user_id = $1 AND event_date LIKE $2 ORDER BY event_date, event_time`
	rows, err := r.DB.Query(query, userID, monthPrefix(month, year))
	if err != nil {
		logger.Log.WithError(err).Error("Failed to execute list calendar events query")
		return nil, err
	}
	defer rows.Close()

	events := []*model.CalendarEvent{}
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

func (r *CalendarRepository) Update(event *model.CalendarEvent) error {
	query := `UPDATE calendar_events SET title=$1, description=$2, event_date=$3, event_time=$4, channel=$5, status=$6, color=$7
	          WHERE id = $8 AND user_id = $9`
	res, err := r.DB.Exec(query, event.Title, event.Description, event.EventDate, event.EventTime,
		event.Channel, event.Status, event.Color, event.ID, event.UserID)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to execute update calendar event query")
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *CalendarRepository) Delete(id, userID int) error {
	res, err := r.DB.Exec(`DELETE FROM calendar_events WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to execute delete calendar event query")
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// DeleteMonth clears a month before the generator refills it.
func (r *CalendarRepository) DeleteMonth(userID, month, year int) error {
	_, err := r.DB.Exec(`DELETE FROM calendar_events WHERE user_id = $1 AND event_date LIKE $2`,
		userID, monthPrefix(month, year))
	if err != nil {
		logger.Log.WithError(err).Error("Failed to execute delete month events query")
	}
	return err
}
