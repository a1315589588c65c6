package service

import (
	"database/sql"
	"errors"
	"time"

	"ai-marketing-api/logger"
	"ai-marketing-api/model"
	"ai-marketing-api/repository"
)

var ErrEventNotFound = errors.New("event not found")

type CalendarService struct {
	repo repository.ICalendarRepository
	ai   *AIService
	now  func() time.Time
}

func NewCalendarService(repo repository.ICalendarRepository, ai *AIService) *CalendarService {
	return &CalendarService{repo: repo, ai: ai, now: time.Now}
}

// normalizeMonth substitutes the current month/year for zero values.
func (s *CalendarService) normalizeMonth(month, year int) (int, int) {
	now := s.now()
	if month < 1 || month > 12 {
		month = int(now.Month())
	}
	if year == 0 {
		year = now.Year()
	}
	return month, year
}

func (s *CalendarService) ListMonth(userID, month, year int) ([]*model.CalendarEvent, error) {
	month, year = s.normalizeMonth(month, year)
	return s.repo.ListByMonth(userID, month, year)
}

func (s *CalendarService) Create(userID int, req *model.CreateEventRequest) (*model.CalendarEvent, error) {
	event := &model.CalendarEvent{
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
		EventDate:   req.EventDate,
		EventTime:   req.EventTime,
		Channel:     model.Channel(req.Channel),
		Status:      model.EventStatus(req.Status),
		Color:       req.Color,
	}
	if event.EventTime == "" {
		event.EventTime = "12:00"
	}
	if event.Channel == "" {
		event.Channel = model.ChannelInstagram
	}
	if event.Status == "" {
		event.Status = model.EventStatusPlanned
	}
	if event.Color == "" {
		event.Color = "#667eea"
	}

	if err := s.repo.Create(event); err != nil {
		return nil, err
	}
	return event, nil
}

func (s *CalendarService) Update(id, userID int, req *model.UpdateEventRequest) (*model.CalendarEvent, error) {
	event, err := s.repo.GetByID(id, userID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrEventNotFound
		}
		return nil, err
	}

	if req.Title != nil {
		event.Title = *req.Title
	}
	if req.Description != nil {
		event.Description = *req.Description
	}
	if req.EventDate != nil {
		event.EventDate = *req.EventDate
	}
	if req.EventTime != nil {
		event.EventTime = *req.EventTime
	}
	if req.Channel != nil {
		event.Channel = model.Channel(*req.Channel)
	}
	if req.Status != nil {
		event.Status = model.EventStatus(*req.Status)
	}
	if req.Color != nil {
		event.Color = *req.Color
	}

	if err := s.repo.Update(event); err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrEventNotFound
		}
		return nil, err
	}
	return event, nil
}

func (s *CalendarService) Delete(id, userID int) error {
	if err := s.repo.Delete(id, userID); err != nil {
		if err == sql.ErrNoRows {
			return ErrEventNotFound
		}
		return err
	}
	return nil
}

// GenerateMonth replaces the month's plan with a freshly generated one
// and returns the stored events.
func (s *CalendarService) GenerateMonth(userID, month, year int) ([]*model.CalendarEvent, int, int, error) {
	month, year = s.normalizeMonth(month, year)

	generated := s.ai.GenerateCalendar(month, year)

	if err := s.repo.DeleteMonth(userID, month, year); err != nil {
		return nil, 0, 0, err
	}
	for _, event := range generated {
		event.UserID = userID
		if err := s.repo.Create(event); err != nil {
			logger.Log.WithError(err).Warn("Failed to store generated calendar event")
		}
	}

	events, err := s.repo.ListByMonth(userID, month, year)
	if err != nil {
		return nil, 0, 0, err
	}
	return events, month, year, nil
}
