package queries

import (
	"context"
	"errors"
	"strings"
	"time"

	"courierdispatch/internal/core/domain/model/kernel"
	"courierdispatch/internal/pkg/guard"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SearchUsersLimit caps how many users one search returns.
const SearchUsersLimit = 5

var (
	ErrSearchUsersQueryIsNotConstructed = errors.New(
		"SearchUsersQuery must be created via NewSearchUsersQuery constructor",
	)
)

// SearchUsersQuery matches the text case-insensitively against display name and
// email. Empty text returns the newest users.
type SearchUsersQuery struct {
	text  string
	guard guard.ConstructorGuard
}

func NewSearchUsersQuery(text string) SearchUsersQuery {
	return SearchUsersQuery{
		text:  strings.ToLower(strings.TrimSpace(text)),
		guard: guard.NewConstructorGuard(),
	}
}

func (q SearchUsersQuery) Validate() error {
	return q.guard.Validate(ErrSearchUsersQueryIsNotConstructed)
}

type UserView struct {
	ID          kernel.UUID
	Email       string
	DisplayName string
	PhotoURL    string
	Role        string
	CreatedAt   time.Time
}

type userRow struct {
	ID          uuid.UUID
	Email       string
	DisplayName string
	PhotoURL    string `gorm:"column:photo_url"`
	Role        string
	CreatedAt   time.Time
}

type SearchUsersQueryHandler struct {
	db *gorm.DB
}

func NewSearchUsersQueryHandler(db *gorm.DB) SearchUsersQueryHandler {
	return SearchUsersQueryHandler{db: db}
}

func (h SearchUsersQueryHandler) Handle(ctx context.Context, query SearchUsersQuery) ([]UserView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	tx := h.db.WithContext(ctx).Table("users").
		Select("id, email, display_name, photo_url, role, created_at")
	if query.text != "" {
		pattern := "%" + escapeLike(query.text) + "%"
		tx = tx.Where(
			"LOWER(display_name) LIKE ? ESCAPE '\\' OR LOWER(email) LIKE ? ESCAPE '\\'",
			pattern, pattern,
		)
	}

	var rows []userRow
	if err := tx.Order("created_at DESC").Limit(SearchUsersLimit).Scan(&rows).Error; err != nil {
		return nil, err
	}

	users := make([]UserView, 0, len(rows))
	for _, row := range rows {
		id, err := kernel.UUIDFromBytes(row.ID[:])
		if err != nil {
			return nil, err
		}
		users = append(users, UserView{
			ID:          id,
			Email:       row.Email,
			DisplayName: row.DisplayName,
			PhotoURL:    row.PhotoURL,
			Role:        row.Role,
			CreatedAt:   row.CreatedAt,
		})
	}
	return users, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
