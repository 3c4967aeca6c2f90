package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"

	"brm-service/internal/app/contracts"
	"brm-service/internal/pkg/constvars"
	"brm-service/internal/pkg/exceptions"

	"github.com/minio/minio-go/v7"
)

type minioStorage struct {
	MinioClient  *minio.Client
	BucketName   string
	ObjectPrefix string
}

// NewMinioStorage keeps each document as one object named
// <prefix><document>.json in the bucket.
func NewMinioStorage(minioClient *minio.Client, bucketName, objectPrefix string) contracts.DocumentBackend {
	return &minioStorage{
		MinioClient:  minioClient,
		BucketName:   bucketName,
		ObjectPrefix: objectPrefix,
	}
}

func (m *minioStorage) objectName(name string) string {
	return fmt.Sprintf("%s%s.json", m.ObjectPrefix, name)
}

func (m *minioStorage) ReadDocument(ctx context.Context, name string) ([]byte, error) {
	object, err := m.MinioClient.GetObject(ctx, m.BucketName, m.objectName(name), minio.GetObjectOptions{})
	if err != nil {
		return nil, exceptions.ErrMinioGetObject(err, m.BucketName)
	}
	defer object.Close()

	data, err := io.ReadAll(object)
	if err != nil {
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return nil, fmt.Errorf("%s: %w", m.objectName(name), os.ErrNotExist)
		}
		return nil, exceptions.ErrMinioGetObject(err, m.BucketName)
	}
	return data, nil
}

func (m *minioStorage) WriteDocument(ctx context.Context, name string, data []byte) error {
	_, err := m.MinioClient.PutObject(
		ctx,
		m.BucketName,
		m.objectName(name),
		bytes.NewReader(data),
		int64(len(data)),
		minio.PutObjectOptions{
			ContentType: constvars.MIMEApplicationJSON,
		},
	)
	if err != nil {
		return exceptions.ErrMinioPutObject(err, m.BucketName)
	}
	return nil
}

func (m *minioStorage) DocumentExists(ctx context.Context, name string) (bool, error) {
	_, err := m.MinioClient.StatObject(ctx, m.BucketName, m.objectName(name), minio.StatObjectOptions{})
	if err != nil {
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return false, nil
		}
		return false, exceptions.ErrMinioGetObject(err, m.BucketName)
	}
	return true, nil
}

func (m *minioStorage) Ping(ctx context.Context) error {
	_, err := m.MinioClient.BucketExists(ctx, m.BucketName)
	return err
}
