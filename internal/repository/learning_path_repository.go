package repository

import (
	"strings"

	"github.com/skillforge-dev/skillforge/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type LearningPathRepository interface {
	FindAll() ([]model.LearningPath, error)
	// FindBySkills matches paths case-insensitively against the given skills.
	FindBySkills(skills []string) ([]model.LearningPath, error)
	Upsert(path *model.LearningPath) error
}

type learningPathRepository struct {
	db *gorm.DB
}

func NewLearningPathRepository(db *gorm.DB) LearningPathRepository {
	return &learningPathRepository{db: db}
}

func (r *learningPathRepository) FindAll() ([]model.LearningPath, error) {
	var paths []model.LearningPath
	err := r.db.Order("skill ASC").Find(&paths).Error
	return paths, err
}

func (r *learningPathRepository) FindBySkills(skills []string) ([]model.LearningPath, error) {
	if len(skills) == 0 {
		return nil, nil
	}
	lowered := make([]string, 0, len(skills))
	for _, s := range skills {
		lowered = append(lowered, strings.ToLower(strings.TrimSpace(s)))
	}
	var paths []model.LearningPath
	err := r.db.Where("LOWER(skill) IN ?", lowered).Find(&paths).Error
	return paths, err
}

func (r *learningPathRepository) Upsert(path *model.LearningPath) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "skill"}},
		DoUpdates: clause.AssignmentColumns([]string{"description", "resources", "related_skills", "updated_at"}),
	}).Create(path).Error
}
