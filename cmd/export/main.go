package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awscfg "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/sirupsen/logrus"

	"mylibrary-user/internal/config"
	"mylibrary-user/internal/database"
	"mylibrary-user/internal/export"
	"mylibrary-user/internal/logging"
	"mylibrary-user/internal/service"
	"mylibrary-user/internal/storage"
)

func main() {
	list := flag.Bool("list", false, "list existing exports instead of creating one")
	pageSize := flag.Int("page-size", export.DefaultPageSize, "users read per page")
	presign := flag.Duration("presign", 0, "print a download URL valid for this long")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("load config: %v", err)
	}
	logger, err := logging.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		logrus.Fatalf("setup logger: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	storageSvc, err := buildStorage(ctx, cfg, logger)
	if err != nil {
		logger.Fatalf("setup storage: %v", err)
	}

	userRepo, db, err := database.OpenUsers(ctx, cfg)
	if err != nil {
		logger.Fatalf("open database: %v", err)
	}
	defer db.Close()

	exporter, err := export.New(service.NewUserService(userRepo), storageSvc, logger, export.Config{
		Bucket:    cfg.Export.Bucket,
		KeyPrefix: cfg.Export.KeyPrefix,
		PageSize:  *pageSize,
		Progress: func(done, total int64) {
			logger.Debugf("uploaded %d/%d bytes", done, total)
		},
	})
	if err != nil {
		logger.Fatalf("setup exporter: %v", err)
	}

	if *list {
		objects, err := exporter.List(ctx)
		if err != nil {
			logger.Fatalf("list exports: %v", err)
		}
		for _, obj := range objects {
			modified := ""
			if obj.LastModified != nil {
				modified = obj.LastModified.UTC().Format(time.RFC3339)
			}
			fmt.Printf("%s\t%d\t%s\n", obj.Key, obj.Size, modified)
		}
		return
	}

	res, err := exporter.Run(ctx)
	if err != nil {
		logger.Fatalf("export users: %v", err)
	}
	fmt.Printf("exported %d users to %s\n", res.Count, res.Location)

	if *presign > 0 {
		url, err := storageSvc.GetObjectURL(ctx, cfg.Export.Bucket, res.Key, *presign)
		if err != nil {
			logger.Fatalf("presign export: %v", err)
		}
		fmt.Println(url)
	}
}

func buildStorage(ctx context.Context, cfg config.Config, logger *logrus.Logger) (storage.Service, error) {
	if cfg.Export.Bucket == "" {
		return nil, fmt.Errorf("export bucket is required")
	}

	loadOpts := []func(*awscfg.LoadOptions) error{
		awscfg.WithRegion(cfg.Export.Region),
	}
	if cfg.AWS.Profile != "" {
		loadOpts = append(loadOpts, awscfg.WithSharedConfigProfile(cfg.AWS.Profile))
	}

	awsCfg, err := awscfg.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Export.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Export.Endpoint)
			o.UsePathStyle = true
		}
	})
	logger.Infof("using s3 bucket %s (region %s)", cfg.Export.Bucket, cfg.Export.Region)
	return storage.NewS3Service(client), nil
}
