package service

import (
	"context"
	"time"

	"accorcia/internal/model"
)

// UserRepository defines the credential store operations (for testing)
type UserRepository interface {
	CreateUser(ctx context.Context, u *model.User) error
	GetUserByUsername(ctx context.Context, username string) (*model.User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	UpdatePassword(ctx context.Context, userID int64, hash string) error
}

// LinkRepository defines the link store operations (for testing)
type LinkRepository interface {
	CreateLink(ctx context.Context, l *model.Link) error
	GetLinkByCode(ctx context.Context, shortCode string) (*model.Link, error)
	UpdateLink(ctx context.Context, l *model.Link) error
	DeleteLink(ctx context.Context, linkID int64) error
	ListLinksByOwner(ctx context.Context, ownerID int64) ([]model.Link, error)
	CountVisitsByLinks(ctx context.Context, linkIDs []int64) (map[int64]int64, error)
}

// VisitRepository defines the visit recorder operations (for testing)
type VisitRepository interface {
	SaveVisit(ctx context.Context, v *model.Visit) error
	CountVisits(ctx context.Context, linkID int64) (int64, error)
	ListVisitsByLink(ctx context.Context, linkID int64, start, end time.Time) ([]model.Visit, error)
	ListVisitsByOwner(ctx context.Context, ownerID int64, start, end time.Time) ([]model.OwnerVisit, error)
	CountVisitsByOwner(ctx context.Context, ownerID int64, start, end time.Time) (map[string]int64, error)
}

// LinkCache defines the read-through cache used by the redirect path (for testing)
type LinkCache interface {
	CacheLink(ctx context.Context, l *model.Link) error
	GetCachedLink(ctx context.Context, shortCode string) (*model.Link, error)
	EvictLink(ctx context.Context, shortCode string) error
}

// VisitPublisher fans a visit event out to the subscribers of a topic
type VisitPublisher interface {
	PublishVisit(ctx context.Context, topic string, evt *model.VisitEvent) error
}

// PasswordHasher hashes and verifies passwords
type PasswordHasher interface {
	Hash(password string) (string, error)
	Matches(password, hash string) bool
}

// TokenIssuer signs session tokens for a username
type TokenIssuer interface {
	Issue(username string) (string, error)
}

// CodeGenerator produces random short codes
type CodeGenerator interface {
	Generate() (string, error)
}

// AuthServiceInterface defines the interface for account operations
type AuthServiceInterface interface {
	Register(ctx context.Context, req *model.RegisterRequest) error
	Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error)
	ChangePassword(ctx context.Context, user *model.User, req *model.ChangePasswordRequest) error
	CurrentUser(ctx context.Context, username string) (*model.User, error)
}

// LinkServiceInterface defines the interface for link management
type LinkServiceInterface interface {
	Create(ctx context.Context, ownerID int64, req *model.CreateLinkRequest) (*model.LinkView, error)
	Edit(ctx context.Context, ownerID int64, shortCode string, req *model.EditLinkRequest) (*model.LinkView, error)
	Delete(ctx context.Context, ownerID int64, shortCode string) error
	ListByOwner(ctx context.Context, ownerID int64) ([]model.LinkView, error)
	CheckOwner(ctx context.Context, ownerID int64, shortCode string) error
}

// RedirectServiceInterface defines the interface for the public redirect path
type RedirectServiceInterface interface {
	Visit(ctx context.Context, shortCode, clientIP, userAgent string) (string, error)
}

// StatsServiceInterface defines the interface for visit statistics
type StatsServiceInterface interface {
	StatsForLink(ctx context.Context, ownerID int64, shortCode string, req *model.DateRangeRequest) (*model.LinkStats, error)
	RecentStats(ctx context.Context, ownerID int64, shortCode string) (*model.LinkStats, error)
	StatsForOwner(ctx context.Context, ownerID int64, req *model.DateRangeRequest) (*model.AccountStats, error)
}
