package repository

import (
	"database/sql"

	"ai-marketing-api/logger"
	"ai-marketing-api/model"
)

// IAutoReplyRepository defines the contract for auto-reply rule and FAQ
// database operations.
type IAutoReplyRepository interface {
	CreateRule(rule *model.AutoReplyRule) error
	GetRuleByID(id, userID int) (*model.AutoReplyRule, error)
	ListRules(userID int) ([]*model.AutoReplyRule, error)
	ListActiveRules(userID int) ([]*model.AutoReplyRule, error)
	UpdateRule(rule *model.AutoReplyRule) error
	DeleteRule(id, userID int) error
	IncrementMatchCount(ruleID int) error

	CreateFAQ(faq *model.FAQ) error
	ListFAQs(userID int) ([]*model.FAQ, error)
	DeleteFAQ(id, userID int) error
}

type AutoReplyRepository struct {
	DB *sql.DB
}

func NewAutoReplyRepository(db *sql.DB) *AutoReplyRepository {
	return &AutoReplyRepository{DB: db}
}

const ruleColumns = `id, user_id, trigger_keyword, reply_text, channel, is_active, match_count, created_at`

func scanRule(row interface{ Scan(...any) error }) (*model.AutoReplyRule, error) {
	rule := &model.AutoReplyRule{}
	err := row.Scan(&rule.ID, &rule.UserID, &rule.TriggerKeyword, &rule.ReplyText,
		&rule.Channel, &rule.IsActive, &rule.MatchCount, &rule.CreatedAt)
	if err != nil {
		return nil, err
	}
	return rule, nil
}

func (r *AutoReplyRepository) CreateRule(rule *model.AutoReplyRule) error {
	query := `INSERT INTO auto_reply_rules (user_id, trigger_keyword, reply_text, channel, is_active)
	          VALUES ($1, $2, $3, $4, $5) RETURNING id, match_count, created_at`
	err := r.DB.QueryRow(query, rule.UserID, rule.TriggerKeyword, rule.ReplyText, rule.Channel, rule.IsActive).
		Scan(&rule.ID, &rule.MatchCount, &rule.CreatedAt)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to execute create auto-reply rule query")
		return err
	}
	return nil
}

func (r *AutoReplyRepository) GetRuleByID(id, userID int) (*model.AutoReplyRule, error) {
	query := `SELECT ` + ruleColumns + ` FROM auto_reply_rules WHERE id = $1 AND user_id = $2`
	return scanRule(r.DB.QueryRow(query, id, userID))
}

func (r *AutoReplyRepository) ListRules(userID int) ([]*model.AutoReplyRule, error) {
	query := `SELECT ` + ruleColumns + ` FROM auto_reply_rules WHERE user_id = $1 ORDER BY created_at DESC`
	return r.listRules(query, userID)
}

func (r *AutoReplyRepository) ListActiveRules(userID int) ([]*model.AutoReplyRule, error) {
	query := `SELECT ` + ruleColumns + ` FROM auto_reply_rules WHERE user_id = $1 AND is_active ORDER BY created_at DESC`
	return r.listRules(query, userID)
}

func (r *AutoReplyRepository) listRules(query string, userID int) ([]*model.AutoReplyRule, error) {
	rows, err := r.DB.Query(query, userID)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to execute list auto-reply rules query")
		return nil, err
	}
	defer rows.Close()

	rules := []*model.AutoReplyRule{}
	for rows.Next() {
		rule, err := scanRule(rows)
		if err != nil {
			return nil, err
		}
		rules = append(rules, rule)
	}
	return rules, rows.Err()
}

func (r *AutoReplyRepository) UpdateRule(rule *model.AutoReplyRule) error {
	query := `UPDATE auto_reply_rules SET trigger_keyword=$1, reply_text=$2, channel=$3, is_active=$4
	          WHERE id = $5 AND user_id = $6`
	res, err := r.DB.Exec(query, rule.TriggerKeyword, rule.ReplyText, rule.Channel, rule.IsActive,
		rule.ID, rule.UserID)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to execute update auto-reply rule query")
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *AutoReplyRepository) DeleteRule(id, userID int) error {
	_, err := r.DB.Exec(`DELETE FROM auto_reply_rules WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to execute delete auto-reply rule query")
	}
	return err
}

func (r *AutoReplyRepository) IncrementMatchCount(ruleID int) error {
	_, err := r.DB.Exec(`UPDATE auto_reply_rules SET match_count = match_count + 1 WHERE id = $1`, ruleID)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to execute increment match count query")
	}
	return err
}

func (r *AutoReplyRepository) CreateFAQ(faq *model.FAQ) error {
	query := `INSERT INTO faqs (user_id, question, answer, category) VALUES ($1, $2, $3, $4) RETURNING id, usage_count, created_at`
	err := r.DB.QueryRow(query, faq.UserID, faq.Question, faq.Answer, faq.Category).
		Scan(&faq.ID, &faq.UsageCount, &faq.CreatedAt)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to execute create FAQ query")
		return err
	}
	return nil
}

func (r *AutoReplyRepository) ListFAQs(userID int) ([]*model.FAQ, error) {
	query := `SELECT id, user_id, question, answer, category, usage_count, created_at
	          FROM faqs WHERE user_id = $1 ORDER BY usage_count DESC`
	rows, err := r.DB.Query(query, userID)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to execute list FAQs query")
		return nil, err
	}
	defer rows.Close()

	faqs := []*model.FAQ{}
	for rows.Next() {
		faq := &model.FAQ{}
		if err := rows.Scan(&faq.ID, &faq.UserID, &faq.Question, &faq.Answer,
			&faq.Category, &faq.UsageCount, &faq.CreatedAt); err != nil {
			return nil, err
		}
		faqs = append(faqs, faq)
	}
	return faqs, rows.Err()
}

func (r *AutoReplyRepository) DeleteFAQ(id, userID int) error {
	_, err := r.DB.Exec(`DELETE FROM faqs WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to execute delete FAQ query")
	}
	return err
}
