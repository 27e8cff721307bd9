package storage

import (
	"context"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"

	"github.com/mateenqamar1122/Hyperlans-sub002/internal/domain"
)

// S3Gateway implements the storage gateway on an S3-compatible bucket.
type S3Gateway struct {
	s3Client      *s3.S3
	uploader      *s3manager.Uploader
	bucket        string
	publicBaseURL string
}

type S3GatewayDependencies struct {
	Region          string
	Endpoint        string // optional, for S3-compatible providers
	AccessKeyID     string
	SecretAccessKey string
	Bucket          string
	PublicBaseURL   string
}

func NewS3Gateway(deps S3GatewayDependencies) (*S3Gateway, error) {
	config := &aws.Config{
		Region:      aws.String(deps.Region),
		Credentials: credentials.NewStaticCredentials(deps.AccessKeyID, deps.SecretAccessKey, ""),
	}
	if deps.Endpoint != "" {
		config.Endpoint = aws.String(deps.Endpoint)
		config.S3ForcePathStyle = aws.Bool(true)
	}

	sess, err := session.NewSession(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create aws session: %w", err)
	}

	s3Client := s3.New(sess)

	return &S3Gateway{
		s3Client:      s3Client,
		uploader:      s3manager.NewUploaderWithClient(s3Client),
		bucket:        deps.Bucket,
		publicBaseURL: deps.PublicBaseURL,
	}, nil
}

func (g *S3Gateway) Upload(ctx context.Context, path, contentType string, body io.Reader) (string, error) {
	_, err := g.uploader.UploadWithContext(ctx, &s3manager.UploadInput{
		Bucket:      aws.String(g.bucket),
		Key:         aws.String(path),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrBackendUnavailable, err)
	}

	return path, nil
}

func (g *S3Gateway) PublicURL(path string) string {
	return fmt.Sprintf("%s/%s", g.publicBaseURL, path)
}

func (g *S3Gateway) Remove(ctx context.Context, path string) error {
	_, err := g.s3Client.DeleteObjectWithContext(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(g.bucket),
		Key:    aws.String(path),
	})
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrBackendUnavailable, err)
	}

	return nil
}
