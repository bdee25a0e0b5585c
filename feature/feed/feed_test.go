package feed

import (
	"bytes"
	"io"
	"testing"

	"collection-sync/core/database"
	"collection-sync/core/storage/mocks"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

const testBucket = "test-bucket"

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}

	return gormDB, mock
}

func setupSQLite(t *testing.T) *gorm.DB {
	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func setupService(t *testing.T, cfg Config) (*Service, *mocks.Client) {
	client := new(mocks.Client)
	svc := NewService(client, testBucket, zap.NewNop(), setupSQLite(t), cfg)
	require.NoError(t, svc.Migrate(t.Context()))
	return svc, client
}

func testConfig() Config {
	return Config{Prefix: "feeds", Extension: ".json"}
}

// publish makes the next download of a feed return body.
func publish(client *mocks.Client, name, body string) {
	client.On("GetObject", mock.Anything, testBucket, "feeds/"+name+".json", mock.Anything).
		Return(io.NopCloser(bytes.NewReader([]byte(body))), nil).
		Once()
}

func unpublished(client *mocks.Client, name string) {
	client.On("GetObject", mock.Anything, testBucket, "feeds/"+name+".json", mock.Anything).
		Return(nil, minio.ErrorResponse{Code: "NoSuchKey"}).
		Once()
}
