package persistence

import (
	"bytes"
	"context"
	"errors"
	"io"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
	"github.com/molpadia/molpashow/internal/domain/repository"
)

// S3Store keeps each key as an object in an S3 bucket.
type S3Store struct {
	client s3iface.S3API
	bucket string
}

func NewS3Store(sess *session.Session, bucket string) *S3Store {
	return &S3Store{s3.New(sess), bucket}
}

// Download the object of the key.
func (s *S3Store) Get(ctx context.Context, key string) ([]byte, error) {
	out, err := s.client.GetObjectWithContext(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if isNoSuchKey(err) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, &StoreError{Op: "get", Backend: "s3", Key: key, Err: err}
	}
	defer out.Body.Close()
	b, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, &StoreError{Op: "get", Backend: "s3", Key: key, Err: err}
	}
	return b, nil
}

// Upload the value as an entire object.
func (s *S3Store) Set(ctx context.Context, key string, value []byte) error {
	_, err := s.client.PutObjectWithContext(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(value),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return &StoreError{Op: "set", Backend: "s3", Key: key, Err: err}
	}
	return nil
}

func (s *S3Store) Delete(ctx context.Context, key string) error {
	_, err := s.client.DeleteObjectWithContext(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return &StoreError{Op: "delete", Backend: "s3", Key: key, Err: err}
	}
	return nil
}

func (s *S3Store) Close() error { return nil }

func isNoSuchKey(err error) bool {
	var aerr awserr.Error
	if !errors.As(err, &aerr) {
		return false
	}
	return aerr.Code() == s3.ErrCodeNoSuchKey || aerr.Code() == "NotFound"
}
