package storage_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"collection-sync/core/storage"
	"collection-sync/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type doc struct {
	Items []string `json:"items"`
}

func TestReadJSON(t *testing.T) {
	ctx := context.Background()

	t.Run("Decodes", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("GetObject", mock.Anything, "collections", "feeds/news.json", mock.Anything).
			Return(io.NopCloser(bytes.NewReader([]byte(`{"items":["a","b"]}`))), nil)

		var d doc
		require.NoError(t, storage.ReadJSON(ctx, client, "collections", "feeds/news.json", &d))
		assert.Equal(t, []string{"a", "b"}, d.Items)
		client.AssertExpectations(t)
	})

	t.Run("MissingObject", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("GetObject", mock.Anything, "collections", "feeds/none.json", mock.Anything).
			Return(nil, minio.ErrorResponse{Code: "NoSuchKey", Message: "The specified key does not exist."})

		var d doc
		err := storage.ReadJSON(ctx, client, "collections", "feeds/none.json", &d)
		assert.True(t, errors.Is(err, storage.ErrObjectNotFound))
	})

	t.Run("MalformedJSON", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("GetObject", mock.Anything, "collections", "feeds/bad.json", mock.Anything).
			Return(io.NopCloser(bytes.NewReader([]byte(`{"items":`))), nil)

		var d doc
		err := storage.ReadJSON(ctx, client, "collections", "feeds/bad.json", &d)
		require.Error(t, err)
		assert.False(t, errors.Is(err, storage.ErrObjectNotFound))
	})
}

func TestWriteJSON(t *testing.T) {
	client := new(mocks.Client)
	var uploaded []byte
	client.On("PutObject", mock.Anything, "collections", "feeds/news.json", mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			uploaded, _ = io.ReadAll(args.Get(3).(io.Reader))
		}).
		Return(minio.UploadInfo{}, nil)

	err := storage.WriteJSON(context.Background(), client, "collections", "feeds/news.json", doc{Items: []string{"x"}})
	require.NoError(t, err)
	assert.JSONEq(t, `{"items":["x"]}`, string(uploaded))
}

func TestEnsureBucket(t *testing.T) {
	ctx := context.Background()

	t.Run("Exists", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "collections").Return(true, nil)

		require.NoError(t, storage.EnsureBucket(ctx, client, "collections", ""))
		client.AssertNotCalled(t, "MakeBucket", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Creates", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "collections").Return(false, nil)
		client.On("MakeBucket", mock.Anything, "collections", minio.MakeBucketOptions{Region: "eu-west-1"}).Return(nil)

		require.NoError(t, storage.EnsureBucket(ctx, client, "collections", "eu-west-1"))
		client.AssertExpectations(t)
	})
}
