package mysql

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Guyuepp/go-clean-social/domain"
	"github.com/Guyuepp/go-clean-social/internal/repository/mysql/model"
)

type userRepository struct {
	DB *gorm.DB
}

var _ domain.UserRepository = (*userRepository)(nil)

// NewUserRepository will create an implementation of domain.UserRepository
func NewUserRepository(db *gorm.DB) *userRepository {
	return &userRepository{
		DB: db,
	}
}

func (m *userRepository) GetByID(ctx context.Context, id int64) (domain.User, error) {
	var user model.User
	if err := m.DB.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		return domain.User{}, translateError(err)
	}

	return user.ToDomain(), nil
}

func (m *userRepository) Insert(ctx context.Context, u *domain.User) error {
	userModel := model.NewUserFromDomain(u)

	if err := m.DB.WithContext(ctx).Create(userModel).Error; err != nil {
		return translateError(err)
	}

	u.ID = userModel.ID
	u.CreatedAt = userModel.CreatedAt
	u.UpdatedAt = userModel.UpdatedAt
	return nil
}

func (m *userRepository) GetByUsername(ctx context.Context, username string) (domain.User, error) {
	var user model.User
	if err := m.DB.WithContext(ctx).First(&user, "username = ?", username).Error; err != nil {
		return domain.User{}, translateError(err)
	}

	return user.ToDomain(), nil
}

func (m *userRepository) GetByIDs(ctx context.Context, uids []int64) ([]domain.User, error) {
	if len(uids) == 0 {
		return []domain.User{}, nil
	}
	var users []model.User
	err := m.DB.WithContext(ctx).Model(&model.User{}).Where("id IN ?", uids).Find(&users).Error
	res := make([]domain.User, len(users))
	for i := range users {
		res[i] = users[i].ToDomain()
	}
	return res, err
}

type profileRepository struct {
	DB *gorm.DB
}

var _ domain.ProfileRepository = (*profileRepository)(nil)

func NewProfileRepository(db *gorm.DB) *profileRepository {
	return &profileRepository{
		DB: db,
	}
}

func (m *profileRepository) Get(ctx context.Context, userID int64) (domain.Profile, error) {
	var profile model.Profile
	if err := m.DB.WithContext(ctx).First(&profile, "user_id = ?", userID).Error; err != nil {
		return domain.Profile{}, translateError(err)
	}
	return profile.ToDomain(), nil
}

func (m *profileRepository) Upsert(ctx context.Context, p *domain.Profile) error {
	profileModel := model.Profile{
		UserID: p.UserID,
		Bio:    p.Bio,
	}
	err := m.DB.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"bio", "updated_at"}),
		}).
		Create(&profileModel).Error
	if err != nil {
		return err
	}
	p.UpdatedAt = profileModel.UpdatedAt
	return nil
}
