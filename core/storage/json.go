package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/minio/minio-go/v7"
)

// ErrObjectNotFound is returned when the requested object does not exist.
var ErrObjectNotFound = errors.New("object not found")

// ReadJSON downloads objectName and decodes it into v.
func ReadJSON(ctx context.Context, client Client, bucket, objectName string, v any) error {
	reader, err := client.GetObject(ctx, bucket, objectName, minio.GetObjectOptions{})
	if err != nil {
		return wrapObjectError(objectName, err)
	}
	defer reader.Close()

	// Minio reports a missing object on the first read, not on GetObject
	if err := json.NewDecoder(reader).Decode(v); err != nil {
		return wrapObjectError(objectName, err)
	}
	return nil
}

// WriteJSON encodes v and uploads it as objectName.
func WriteJSON(ctx context.Context, client Client, bucket, objectName string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", objectName, err)
	}

	_, err = client.PutObject(
		ctx,
		bucket,
		objectName,
		bytes.NewReader(data),
		int64(len(data)),
		minio.PutObjectOptions{ContentType: "application/json"},
	)
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", objectName, err)
	}
	return nil
}

func wrapObjectError(objectName string, err error) error {
	switch minio.ToErrorResponse(err).Code {
	case "NoSuchKey", "NoSuchBucket":
		return fmt.Errorf("%s: %w", objectName, ErrObjectNotFound)
	}
	return fmt.Errorf("failed to read %s: %w", objectName, err)
}
