//go:generate go run go.uber.org/mock/mockgen -source=demonstration.go -destination=../mocks/mock_demonstration_repository.go -package=mocks
package repositories

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"furniture-lab/domain/furniture"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/samber/lo"
)

const demonstrationPrefix = "demonstration:"

type IDemonstrationRepository interface {
	Store(demonstration furniture.Demonstration) error
	List() ([]furniture.Demonstration, error)
}

type DemonstrationRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewDemonstrationRepository(db *badger.DB, log *slog.Logger) *DemonstrationRepository {
	return &DemonstrationRepository{db: db, log: log}
}

// demonstrationRecord is the stored shape. Demonstrations are written
// as JSON; keys embed the timestamp so a prefix scan returns runs in
// chronological order.
type demonstrationRecord struct {
	ID        string    `json:"id"`
	Variant   string    `json:"variant"`
	SleepLine string    `json:"sleep_line"`
	SitLine   string    `json:"sit_line"`
	At        time.Time `json:"at"`
}

func (r DemonstrationRepository) Store(demonstration furniture.Demonstration) error {
	key := fmt.Sprintf("%s%d:%s",
		demonstrationPrefix,
		demonstration.At.UnixNano(),
		demonstration.ID.String(),
	)
	bytes, err := json.Marshal(fromDemonstration(demonstration))
	if err != nil {
		return err
	}
	return r.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), bytes)
	})
}

func (r DemonstrationRepository) List() ([]furniture.Demonstration, error) {
	var records []demonstrationRecord
	err := r.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefix := []byte(demonstrationPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			err := it.Item().Value(func(v []byte) error {
				var record demonstrationRecord
				if err := json.Unmarshal(v, &record); err != nil {
					r.log.Warn("Skipping unreadable demonstration", "key", string(it.Item().Key()), "error", err)
					return nil
				}
				records = append(records, record)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	demonstrations := make([]furniture.Demonstration, 0, len(records))
	for _, record := range records {
		demonstration, err := toDemonstration(record)
		if err != nil {
			return nil, err
		}
		demonstrations = append(demonstrations, demonstration)
	}
	return demonstrations, nil
}

func fromDemonstration(demonstration furniture.Demonstration) demonstrationRecord {
	return demonstrationRecord{
		ID:        demonstration.ID.String(),
		Variant:   string(demonstration.Variant),
		SleepLine: demonstration.SleepLine,
		SitLine:   demonstration.SitLine,
		At:        demonstration.At,
	}
}

func toDemonstration(record demonstrationRecord) (furniture.Demonstration, error) {
	id, err := uuid.Parse(record.ID)
	if err != nil {
		return furniture.Demonstration{}, err
	}
	variant, err := furniture.ParseVariant(record.Variant)
	if err != nil {
		return furniture.Demonstration{}, err
	}
	return furniture.Demonstration{
		ID:        id,
		Variant:   variant,
		SleepLine: record.SleepLine,
		SitLine:   record.SitLine,
		At:        record.At,
	}, nil
}

// Variants lists the distinct variants present in the stored runs.
func (r DemonstrationRepository) Variants() ([]furniture.Variant, error) {
	demonstrations, err := r.List()
	if err != nil {
		return nil, err
	}
	return lo.Uniq(lo.Map(demonstrations, func(d furniture.Demonstration, _ int) furniture.Variant {
		return d.Variant
	})), nil
}
