// Package store implements the persistence boundary of the variable
// engine: plain values, obtained from and written back to variables only
// through Get and Set, are saved by name in a bolt database with YAML
// value encoding. The reactive engine defines no file format of its own;
// this package is the separate serialization boundary it expects.
package store

import (
	"errors"
	"time"

	bolt "go.etcd.io/bbolt"
	"gopkg.in/yaml.v3"

	"src.velt.dev/pkg/logutil"
)

var logger = logutil.GetLogger("[store] ")

// ErrNoValue is returned by Load when no value was saved under the name.
var ErrNoValue = errors.New("no such value")

const bucketValues = "values"

// Store is the interface of the value store.
type Store interface {
	// Load reads the value saved under name into ptr, which must be a
	// pointer. Returns ErrNoValue if nothing was saved under name.
	Load(name string, ptr any) error
	// Save writes value under name, replacing any previous value.
	Save(name string, value any) error
	// Del removes the value saved under name, if any.
	Del(name string) error
	// Names lists all saved names in key order.
	Names() ([]string, error)
	// Close waits for pending operations and closes the database.
	Close() error
}

type dbStore struct {
	db *bolt.DB
}

// NewStore opens a value store at the given file path, creating the file
// and the schema as needed.
func NewStore(path string) (Store, error) {
	db, err := bolt.Open(path, 0o644, &bolt.Options{
		Timeout: time.Second,
	})
	if err != nil {
		return nil, err
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketValues))
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}
	logger.Println("opened value store at", path)
	return &dbStore{db}, nil
}

func (s *dbStore) Load(name string, ptr any) error {
	var data []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketValues))
		v := b.Get([]byte(name))
		if v == nil {
			return ErrNoValue
		}
		data = append([]byte(nil), v...)
		return nil
	})
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, ptr)
}

func (s *dbStore) Save(name string, value any) error {
	data, err := yaml.Marshal(value)
	if err != nil {
		return err
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketValues))
		return b.Put([]byte(name), data)
	})
}

func (s *dbStore) Del(name string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketValues))
		return b.Delete([]byte(name))
	})
}

func (s *dbStore) Names() ([]string, error) {
	var names []string
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketValues))
		return b.ForEach(func(k, v []byte) error {
			names = append(names, string(k))
			return nil
		})
	})
	return names, err
}

func (s *dbStore) Close() error {
	return s.db.Close()
}
