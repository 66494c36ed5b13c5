package store

import (
	"context"

	"github.com/jinzhu/gorm"
	log "github.com/sirupsen/logrus"

	"github.com/bitmark-inc/commerce-survey/schema"
)

const ormLogPrefix = "orm"

type ormTable struct {
	ormDB  *gorm.DB
	header []string
}

// NewORMStore - relational table with one jsonb row of cells per response
func NewORMStore(ormDB *gorm.DB, header []string) ResponseStore {
	return &ormTable{
		ormDB:  ormDB,
		header: append([]string{}, header...),
	}
}

func (s *ormTable) Append(_ context.Context, row []string) error {
	r := schema.ResponseRow{Cells: append(schema.Cells{}, row...)}
	if err := s.ormDB.Create(&r).Error; err != nil {
		log.WithField("prefix", ormLogPrefix).Errorf("insert response with error: %s", err)
		return wrap(OpAppend, err)
	}
	return nil
}

func (s *ormTable) ReadAll(_ context.Context) ([]schema.Record, error) {
	var rows []schema.ResponseRow
	if err := s.ormDB.Order("id asc").Find(&rows).Error; err != nil {
		log.WithField("prefix", ormLogPrefix).Errorf("query responses with error: %s", err)
		return nil, wrap(OpRead, err)
	}

	records := make([]schema.Record, 0, len(rows))
	for _, r := range rows {
		records = append(records, schema.NewRecord(s.header, r.Cells))
	}
	return records, nil
}

// Ping is to check the storage health status
func (s *ormTable) Ping(ctx context.Context) error {
	ctx, cancel := withDefaultTimeout(ctx)
	defer cancel()

	return wrap(OpPing, s.ormDB.DB().PingContext(ctx))
}

// Prepare migrates the response table.
func (s *ormTable) Prepare(_ context.Context, _ []string) error {
	return wrap(OpPrepare, s.ormDB.AutoMigrate(&schema.ResponseRow{}).Error)
}

func (s *ormTable) Close() {
	log.WithField("prefix", ormLogPrefix).Info("closing orm db connections")
	if err := s.ormDB.Close(); err != nil {
		log.WithField("prefix", ormLogPrefix).Error(err)
	}
}
