package storage

import (
	"bytes"
	"context"
	"errors"
	"net/http"

	"github.com/aws/aws-sdk-go-v2/aws"
	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go"
	"github.com/sirupsen/logrus"
)

// S3API is the subset of the S3 client used by S3ObjectStorage
type S3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	HeadObject(ctx context.Context, params *s3.HeadObjectInput, optFns ...func(*s3.Options)) (*s3.HeadObjectOutput, error)
}

// S3ObjectStorage implements ObjectStorage on an S3 bucket. PutObject is
// atomic, so a failed write never exposes a partial object.
type S3ObjectStorage struct {
	client S3API
	bucket string
	logger *logrus.Logger
}

// NewS3ObjectStorage creates a new S3ObjectStorage instance
func NewS3ObjectStorage(client S3API, bucket string, logger *logrus.Logger) *S3ObjectStorage {
	if logger == nil {
		logger = logrus.New()
	}
	return &S3ObjectStorage{
		client: client,
		bucket: bucket,
		logger: logger,
	}
}

// Put implements ObjectStorage.Put
func (s *S3ObjectStorage) Put(ctx context.Context, key string, data []byte, opts *PutOptions) error {
	if key == "" {
		return NewStorageError("Put", key, ErrInvalidKey)
	}

	input := &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(int64(len(data))),
	}
	if opts != nil && opts.ContentType != "" {
		input.ContentType = aws.String(opts.ContentType)
	}

	out, err := s.client.PutObject(ctx, input)
	if err != nil {
		return NewStorageError("Put", key, classifyS3Error(err))
	}

	s.logger.WithFields(logrus.Fields{
		"bucket": s.bucket,
		"key":    key,
		"etag":   aws.ToString(out.ETag),
	}).Debug("Object uploaded")

	return nil
}

// Exists implements ObjectStorage.Exists
func (s *S3ObjectStorage) Exists(ctx context.Context, key string) (bool, error) {
	if key == "" {
		return false, NewStorageError("Exists", key, ErrInvalidKey)
	}

	_, err := s.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		classified := classifyS3Error(err)
		if errors.Is(classified, ErrObjectNotFound) {
			return false, nil
		}
		return false, NewStorageError("Exists", key, classified)
	}

	return true, nil
}

// Bucket implements ObjectStorage.Bucket
func (s *S3ObjectStorage) Bucket() string {
	return s.bucket
}

// Close implements ObjectStorage.Close
func (s *S3ObjectStorage) Close() error {
	return nil
}

// classifyS3Error maps SDK failures onto the package sentinels while
// keeping the original error in the chain.
func classifyS3Error(err error) error {
	var respErr *awshttp.ResponseError
	if errors.As(err, &respErr) {
		switch respErr.HTTPStatusCode() {
		case http.StatusNotFound:
			return errors.Join(ErrObjectNotFound, err)
		case http.StatusForbidden:
			return errors.Join(ErrPermissionDenied, err)
		case http.StatusServiceUnavailable, http.StatusInternalServerError:
			return errors.Join(ErrStorageUnavailable, err)
		}
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "NoSuchKey", "NotFound", "NoSuchBucket":
			return errors.Join(ErrObjectNotFound, err)
		case "AccessDenied":
			return errors.Join(ErrPermissionDenied, err)
		}
	}

	return err
}
