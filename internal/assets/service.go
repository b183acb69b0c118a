// Package assets stores brochure images in S3. The editor sends data URIs
// from its crop utility; uploading them and referencing the returned URL
// keeps the Firestore documents small.
package assets

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awscfg "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/trekfolio/brochure-backend/config"
)

var ErrUploadDisabled = errors.New("asset upload is not configured")

type Service struct {
	client  *s3.Client
	bucket  string
	baseURL string
}

// NewService builds the S3-backed asset store. Returns (nil, nil) when no
// bucket is configured; callers treat a nil service as upload-disabled.
func NewService(ctx context.Context, cfg config.AssetsConfig) (*Service, error) {
	if cfg.S3Bucket == "" {
		return nil, nil
	}

	awsCfg, err := awscfg.LoadDefaultConfig(ctx, awscfg.WithRegion(cfg.S3Region))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	baseURL := strings.TrimSuffix(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.S3Bucket, cfg.S3Region)
	}

	return &Service{
		client:  s3.NewFromConfig(awsCfg),
		bucket:  cfg.S3Bucket,
		baseURL: baseURL,
	}, nil
}

// Upload decodes the data URI and stores it under the user's asset prefix,
// returning the public URL.
func (s *Service) Upload(ctx context.Context, userID, dataURI string) (string, error) {
	if s == nil {
		return "", ErrUploadDisabled
	}

	payload, err := DecodeDataURI(dataURI)
	if err != nil {
		return "", err
	}

	key := fmt.Sprintf("users/%s/assets/%s%s", userID, uuid.NewString(), payload.Ext)

	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(payload.Data),
		ContentType: aws.String(payload.MIME),
	})
	if err != nil {
		return "", fmt.Errorf("upload asset: %w", err)
	}

	return s.baseURL + "/" + key, nil
}
