package repositories

import (
	"go.mongodb.org/mongo-driver/mongo"
)

// Repositories holds all repository instances
type Repositories struct {
	UserRepository        *UserRepository
	ApplicationRepository *ApplicationRepository
	CollegeRepository     *CollegeRepository
	NoticeRepository      *NoticeRepository
	ContactRepository     *ContactRepository
}

// NewRepositories creates all repositories backed by the given database
func NewRepositories(database *mongo.Database) *Repositories {
	return &Repositories{
		UserRepository:        NewUserRepository(database),
		ApplicationRepository: NewApplicationRepository(database),
		CollegeRepository:     NewCollegeRepository(database),
		NoticeRepository:      NewNoticeRepository(database),
		ContactRepository:     NewContactRepository(database),
	}
}
