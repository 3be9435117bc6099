package storage

import (
	"context"
	"fmt"
	"mime"
	"os"
	"path"
	"path/filepath"
	"strings"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/sts"
	"github.com/diillson/usage-statement-go/internal/domain/entity"
	"github.com/diillson/usage-statement-go/internal/domain/repository"
)

type s3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

type stsAPI interface {
	GetCallerIdentity(ctx context.Context, params *sts.GetCallerIdentityInput, optFns ...func(*sts.Options)) (*sts.GetCallerIdentityOutput, error)
}

// S3RepositoryImpl implementa o PublishRepository com cache de configuração.
type S3RepositoryImpl struct {
	cfgCache map[string]aws.Config
	mu       sync.Mutex

	loadConfig func(ctx context.Context, profile, region string) (aws.Config, error)
	newS3      func(aws.Config) s3API
	newSTS     func(aws.Config) stsAPI
}

// NewS3Repository cria uma nova implementação do PublishRepository.
func NewS3Repository() repository.PublishRepository {
	return &S3RepositoryImpl{
		cfgCache:   make(map[string]aws.Config),
		loadConfig: loadDefaultConfig,
		newS3:      func(cfg aws.Config) s3API { return s3.NewFromConfig(cfg) },
		newSTS:     func(cfg aws.Config) stsAPI { return sts.NewFromConfig(cfg) },
	}
}

func loadDefaultConfig(ctx context.Context, profile, region string) (aws.Config, error) {
	var opts []func(*config.LoadOptions) error
	if profile != "" {
		opts = append(opts, config.WithSharedConfigProfile(profile))
	}
	if region != "" {
		opts = append(opts, config.WithRegion(region))
	}
	return config.LoadDefaultConfig(ctx, opts...)
}

func (r *S3RepositoryImpl) getAWSConfig(ctx context.Context, target entity.PublishTarget) (aws.Config, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	cacheKey := target.Profile + "|" + target.Region
	if cfg, ok := r.cfgCache[cacheKey]; ok {
		return cfg, nil
	}

	cfg, err := r.loadConfig(ctx, target.Profile, target.Region)
	if err != nil {
		return aws.Config{}, fmt.Errorf("failed to load AWS config for profile %s: %w", target.Profile, err)
	}

	r.cfgCache[cacheKey] = cfg
	return cfg, nil
}

// GetAccountID confirma as credenciais antes do upload.
func (r *S3RepositoryImpl) GetAccountID(ctx context.Context, target entity.PublishTarget) (string, error) {
	cfg, err := r.getAWSConfig(ctx, target)
	if err != nil {
		return "", err
	}

	result, err := r.newSTS(cfg).GetCallerIdentity(ctx, &sts.GetCallerIdentityInput{})
	if err != nil {
		return "", fmt.Errorf("error getting account ID for profile %s: %w", target.Profile, err)
	}
	return aws.ToString(result.Account), nil
}

// Publish envia o arquivo para s3://bucket/prefix/<nome do arquivo>.
func (r *S3RepositoryImpl) Publish(ctx context.Context, target entity.PublishTarget, localPath string) (string, error) {
	if !target.Enabled() {
		return "", fmt.Errorf("no S3 bucket configured")
	}

	cfg, err := r.getAWSConfig(ctx, target)
	if err != nil {
		return "", err
	}

	file, err := os.Open(localPath)
	if err != nil {
		return "", fmt.Errorf("error opening %s for upload: %w", localPath, err)
	}
	defer file.Close()

	key := ObjectKey(target.Prefix, localPath)
	input := &s3.PutObjectInput{
		Bucket: aws.String(target.Bucket),
		Key:    aws.String(key),
		Body:   file,
	}
	if ct := mime.TypeByExtension(filepath.Ext(localPath)); ct != "" {
		input.ContentType = aws.String(ct)
	}

	if _, err := r.newS3(cfg).PutObject(ctx, input); err != nil {
		return "", fmt.Errorf("error uploading %s to bucket %s: %w", key, target.Bucket, err)
	}

	return fmt.Sprintf("s3://%s/%s", target.Bucket, key), nil
}

// ObjectKey joins prefix and the base name of localPath with slashes.
func ObjectKey(prefix, localPath string) string {
	prefix = strings.Trim(prefix, "/")
	name := filepath.Base(localPath)
	if prefix == "" {
		return name
	}
	return path.Join(prefix, name)
}
