// Package assets stores product images in an S3-compatible bucket.
//
// Every operation first checks that the bucket exists. Failures are logged
// and reported as false instead of an error, so callers can carry on with
// the database side of a request.
package assets

import (
	"bytes"
	"context"
	"errors"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go"
	"github.com/dmitrijs2005/storekeeper/internal/common"
	"github.com/dmitrijs2005/storekeeper/internal/logging"
	"github.com/gabriel-vasile/mimetype"
)

// PresignExpiry is how long a URL returned by ImageURL stays valid.
const PresignExpiry = 15 * time.Minute

// ObjectAPI is the subset of *s3.Client the gateway uses.
type ObjectAPI interface {
	HeadBucket(ctx context.Context, in *s3.HeadBucketInput, optFns ...func(*s3.Options)) (*s3.HeadBucketOutput, error)
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, in *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// Presigner is the subset of *s3.PresignClient the gateway uses.
type Presigner interface {
	PresignGetObject(ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error)
}

var (
	loadDefaultAWSConfig = config.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}

	newS3PresignClient = func(c *s3.Client) *s3.PresignClient {
		return s3.NewPresignClient(c)
	}
)

// Options describes the bucket and the credentials used to reach it.
type Options struct {
	Region       string
	AccessKey    string
	SecretKey    string
	Bucket       string
	BaseEndpoint string
}

// Upload is an image received from a client.
type Upload struct {
	FileName string
	Content  []byte
}

type Gateway struct {
	api       ObjectAPI
	presigner Presigner
	bucket    string
	logger    logging.Logger
}

// New builds an S3 client for opts. Path-style addressing is forced so that
// MinIO endpoints work without wildcard DNS.
func New(ctx context.Context, opts Options, logger logging.Logger) (*Gateway, error) {
	if opts.Bucket == "" {
		return nil, common.ErrConfiguration
	}

	cfg, err := loadDefaultAWSConfig(ctx,
		config.WithRegion(opts.Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			opts.AccessKey,
			opts.SecretKey,
			"",
		)))
	if err != nil {
		return nil, err
	}

	client := newS3ClientFromConfig(cfg, func(o *s3.Options) {
		if opts.BaseEndpoint != "" {
			o.BaseEndpoint = aws.String(opts.BaseEndpoint)
		}
		o.UsePathStyle = true
	})

	return NewWithClient(client, newS3PresignClient(client), opts.Bucket, logger), nil
}

func NewWithClient(api ObjectAPI, presigner Presigner, bucket string, logger logging.Logger) *Gateway {
	return &Gateway{
		api:       api,
		presigner: presigner,
		bucket:    bucket,
		logger:    logger.With("module", "assets", "bucket", bucket),
	}
}

// ImagePath returns the object key for an image of the named entity,
// e.g. ImagePath("Desk Lamp", "photos/a.png") is "Desk Lamp/a.png".
func ImagePath(entity, fileName string) string {
	return entity + "/" + path.Base(strings.ReplaceAll(fileName, "\\", "/"))
}

func (g *Gateway) bucketExists(ctx context.Context) bool {
	_, err := g.api.HeadBucket(ctx, &s3.HeadBucketInput{Bucket: aws.String(g.bucket)})
	if err != nil {
		g.logger.Warn(ctx, "bucket check failed", errorArgs(err)...)
		return false
	}
	return true
}

// AddImageToBucket uploads file under key. It reports false when the bucket
// is missing or the upload fails.
func (g *Gateway) AddImageToBucket(ctx context.Context, file Upload, key string) bool {
	if !g.bucketExists(ctx) {
		return false
	}

	_, err := g.api.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(g.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(file.Content),
		ContentLength: aws.Int64(int64(len(file.Content))),
		ContentType:   aws.String(mimetype.Detect(file.Content).String()),
	})
	if err != nil {
		g.logger.Warn(ctx, "image upload failed", append(errorArgs(err), "key", key)...)
		return false
	}

	g.logger.Debug(ctx, "image uploaded", "key", key, "size", len(file.Content))
	return true
}

// DeleteImageFromBucket removes key. It reports false when the bucket is
// missing or the delete fails; deleting an absent object succeeds.
func (g *Gateway) DeleteImageFromBucket(ctx context.Context, key string) bool {
	if !g.bucketExists(ctx) {
		return false
	}

	_, err := g.api.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(g.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		g.logger.Warn(ctx, "image delete failed", append(errorArgs(err), "key", key)...)
		return false
	}
	return true
}

// ImageURL returns a presigned GET URL for key.
func (g *Gateway) ImageURL(ctx context.Context, key string) (string, bool) {
	req, err := g.presigner.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(g.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(PresignExpiry))
	if err != nil {
		g.logger.Warn(ctx, "presign failed", append(errorArgs(err), "key", key)...)
		return "", false
	}
	return req.URL, true
}

func errorArgs(err error) []any {
	args := []any{"error", err}
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		args = append(args, "code", apiErr.ErrorCode())
	}
	return args
}
