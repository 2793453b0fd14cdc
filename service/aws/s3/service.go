package awss3

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/elC0mpa/aws-manager/model"
	svc "github.com/elC0mpa/aws-manager/service"
)

// S3 reports no location constraint for buckets living in the default region
const defaultRegion = "us-east-1"

// DeleteObjects accepts at most 1000 keys per call
const deleteBatchSize = 1000

func NewService(awsconfig aws.Config) *service {
	client := s3.NewFromConfig(awsconfig)
	return &service{
		client: client,
		region: awsconfig.Region,
	}
}

// ListBuckets enumerates every bucket and resolves its region with one
// follow-up lookup each. A failed lookup degrades that bucket's region to
// "unknown" instead of aborting the listing.
func (s *service) ListBuckets(ctx context.Context) ([]model.S3Bucket, error) {
	output, err := s.client.ListBuckets(ctx, &s3.ListBucketsInput{})
	if err != nil {
		return nil, svc.WrapProvider("s3", err)
	}

	buckets := []model.S3Bucket{}
	for _, bucket := range output.Buckets {
		name := aws.ToString(bucket.Name)
		buckets = append(buckets, model.S3Bucket{
			Name:         name,
			Region:       s.resolveRegion(ctx, name),
			CreationDate: bucket.CreationDate,
		})
	}

	return buckets, nil
}

// CreateBucket creates the bucket in the session's region. The explicit
// location constraint is omitted for the default region, which S3 rejects
// when spelled out.
func (s *service) CreateBucket(ctx context.Context, name string) error {
	input := &s3.CreateBucketInput{
		Bucket: aws.String(name),
	}
	if s.region != "" && s.region != defaultRegion {
		input.CreateBucketConfiguration = &types.CreateBucketConfiguration{
			LocationConstraint: types.BucketLocationConstraint(s.region),
		}
	}

	_, err := s.client.CreateBucket(ctx, input)
	return svc.WrapProvider("s3", err)
}

// DeleteBucket deletes the bucket. With force it first drains every object
// version and delete marker in batches; a failure mid-drain surfaces as is,
// with no accounting of what was already deleted.
func (s *service) DeleteBucket(ctx context.Context, name string, force bool) error {
	if force {
		if err := s.drainBucket(ctx, name); err != nil {
			return err
		}
	}

	_, err := s.client.DeleteBucket(ctx, &s3.DeleteBucketInput{
		Bucket: aws.String(name),
	})
	return svc.WrapProvider("s3", err)
}

func (s *service) resolveRegion(ctx context.Context, bucket string) string {
	output, err := s.client.GetBucketLocation(ctx, &s3.GetBucketLocationInput{
		Bucket: aws.String(bucket),
	})
	if err != nil {
		return "unknown"
	}
	if output.LocationConstraint == "" {
		return defaultRegion
	}
	return string(output.LocationConstraint)
}

func (s *service) drainBucket(ctx context.Context, bucket string) error {
	input := &s3.ListObjectVersionsInput{
		Bucket: aws.String(bucket),
	}

	for {
		page, err := s.client.ListObjectVersions(ctx, input)
		if err != nil {
			return svc.WrapProvider("s3", err)
		}

		objects := make([]types.ObjectIdentifier, 0, len(page.Versions)+len(page.DeleteMarkers))
		for _, version := range page.Versions {
			objects = append(objects, types.ObjectIdentifier{
				Key:       version.Key,
				VersionId: version.VersionId,
			})
		}
		for _, marker := range page.DeleteMarkers {
			objects = append(objects, types.ObjectIdentifier{
				Key:       marker.Key,
				VersionId: marker.VersionId,
			})
		}

		for start := 0; start < len(objects); start += deleteBatchSize {
			end := min(start+deleteBatchSize, len(objects))
			_, err := s.client.DeleteObjects(ctx, &s3.DeleteObjectsInput{
				Bucket: aws.String(bucket),
				Delete: &types.Delete{
					Objects: objects[start:end],
					Quiet:   aws.Bool(true),
				},
			})
			if err != nil {
				return svc.WrapProvider("s3", err)
			}
		}

		if !aws.ToBool(page.IsTruncated) {
			return nil
		}
		input.KeyMarker = page.NextKeyMarker
		input.VersionIdMarker = page.NextVersionIdMarker
	}
}
