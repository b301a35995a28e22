package storage

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// blobsテーブルの1行。キーごとにテキスト1塊。
type Blob struct {
	Key       string    `gorm:"primaryKey;type:varchar(64)"`
	Data      string    `gorm:"type:text;not null"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime"`
}

// GormStore はPostgres上のblobsテーブルを保存先にする。
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) (*GormStore, error) {
	if err := db.AutoMigrate(&Blob{}); err != nil {
		return nil, err
	}
	return &GormStore{db: db}, nil
}

func (s *GormStore) Load(ctx context.Context, key string) ([]byte, error) {
	var b Blob
	err := s.db.WithContext(ctx).Where("key = ?", key).First(&b).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNoBlob
	}
	if err != nil {
		return nil, err
	}
	return []byte(b.Data), nil
}

func (s *GormStore) Save(ctx context.Context, key string, data []byte) error {
	b := Blob{Key: key, Data: string(data), UpdatedAt: time.Now()}

	// 同じキーは上書き
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"data", "updated_at"}),
		}).
		Create(&b).Error
}
