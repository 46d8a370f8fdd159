// Package storage wraps the S3-compatible object store. It hands out
// presigned URLs so clients transfer bytes directly against the backend;
// this server never proxies object payloads.
package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	sc "github.com/dmitrijs2005/gatekeeper/internal/server/config"
	"github.com/dmitrijs2005/gatekeeper/internal/server/runtimecache"
)

const presignExpiry = 15 * time.Minute

// Service issues presigned object-store URLs. The cache records which login
// owns each issued key; it lives exactly as long as the Service that was
// handed it.
type Service struct {
	config *sc.Config
	cache  *runtimecache.Cache
}

func NewService(cfg *sc.Config, cache *runtimecache.Cache) *Service {
	return &Service{config: cfg, cache: cache}
}

// RandomObjectKey builds a date-partitioned object key with a uuid leaf.
func RandomObjectKey() string {
	d := time.Now()
	return fmt.Sprintf("users/%d/%d/%d/%v", d.Year(), d.Month(), d.Day(), uuid.New())
}

func (s *Service) getPresignClient(ctx context.Context) (*s3.PresignClient, error) {
	cfg, err := config.LoadDefaultConfig(ctx,
		config.WithRegion(s.config.S3Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			s.config.S3RootUser,
			s.config.S3RootPassword,
			"",
		)))
	if err != nil {
		return nil, err
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(s.config.S3BaseEndpoint)
	})

	return s3.NewPresignClient(client), nil
}

// GetUploadURL allocates a fresh object key for owner and returns it with a
// presigned PUT URL.
func (s *Service) GetUploadURL(ctx context.Context, owner string) (string, string, error) {
	presignClient, err := s.getPresignClient(ctx)
	if err != nil {
		return "", "", err
	}

	bucket := s.config.S3Bucket
	key := RandomObjectKey()

	req, err := presignClient.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket: &bucket,
		Key:    &key,
	}, s3.WithPresignExpires(presignExpiry))
	if err != nil {
		return "", "", err
	}

	s.cache.Set(key, owner)

	return key, req.URL, nil
}

// GetDownloadURL returns a presigned GET URL for an existing object key.
func (s *Service) GetDownloadURL(ctx context.Context, key string) (string, error) {
	presignClient, err := s.getPresignClient(ctx)
	if err != nil {
		return "", err
	}

	bucket := s.config.S3Bucket

	req, err := presignClient.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: &bucket,
		Key:    &key,
	}, s3.WithPresignExpires(presignExpiry))
	if err != nil {
		return "", err
	}

	return req.URL, nil
}

// ObjectOwner reports the login that a key was issued to, if this process
// issued it.
func (s *Service) ObjectOwner(key string) (string, bool) {
	v, ok := s.cache.Get(key)
	if !ok {
		return "", false
	}
	owner, ok := v.(string)
	return owner, ok
}
