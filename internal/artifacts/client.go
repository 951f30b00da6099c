// Package artifacts stores and retrieves the per-run inputs and outputs of
// a graph-construction job: the request payload, the assembled connectivity
// result, and the job-status record, each under a per-pid "graph-construction"
// folder.
package artifacts

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/pidgraph-labs/pidgraph/internal/config"
	"github.com/pidgraph-labs/pidgraph/internal/graphcore"
	"github.com/pidgraph-labs/pidgraph/pkg/models"
)

const stage = "graph-construction"

type Client struct {
	mc     *minio.Client
	bucket string
}

func NewClient(cfg config.MinIOConfig) (*Client, error) {
	mc, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("create minio client: %w", err)
	}

	return &Client{mc: mc, bucket: cfg.Bucket}, nil
}

func (c *Client) EnsureBucket(ctx context.Context) error {
	exists, err := c.mc.BucketExists(ctx, c.bucket)
	if err != nil {
		return fmt.Errorf("check bucket: %w", err)
	}
	if !exists {
		if err := c.mc.MakeBucket(ctx, c.bucket, minio.MakeBucketOptions{}); err != nil {
			return fmt.Errorf("create bucket: %w", err)
		}
	}
	return nil
}

func (c *Client) UploadFile(ctx context.Context, objectName string, reader io.Reader, size int64) error {
	_, err := c.mc.PutObject(ctx, c.bucket, objectName, reader, size, minio.PutObjectOptions{})
	if err != nil {
		return fmt.Errorf("upload file: %w", err)
	}
	return nil
}

func (c *Client) DownloadFile(ctx context.Context, objectName string) (io.ReadCloser, error) {
	obj, err := c.mc.GetObject(ctx, c.bucket, objectName, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("download file: %w", err)
	}
	return obj, nil
}

func (c *Client) Bucket() string {
	return c.bucket
}

// RequestObjectName, ResponseObjectName, and JobStatusObjectName lay
// artifacts out one folder per pid: {pid}/graph-construction/request.json,
// response.json, and job_status.json.
func RequestObjectName(pidName string) string {
	return fmt.Sprintf("%s/%s/request.json", pidName, stage)
}

func ResponseObjectName(pidName string) string {
	return fmt.Sprintf("%s/%s/response.json", pidName, stage)
}

func JobStatusObjectName(pidName string) string {
	return fmt.Sprintf("%s/%s/job_status.json", pidName, stage)
}

// SaveRequest persists the pipeline input that produced a run, so a failed
// or rerun job can be replayed without the caller resubmitting detections.
func (c *Client) SaveRequest(ctx context.Context, pidName string, input graphcore.Input) error {
	data, err := json.Marshal(input)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}
	return c.UploadFile(ctx, RequestObjectName(pidName), bytes.NewReader(data), int64(len(data)))
}

// LoadRequest fetches the pipeline input that produced a run.
func (c *Client) LoadRequest(ctx context.Context, pidName string) (graphcore.Input, error) {
	var input graphcore.Input
	obj, err := c.DownloadFile(ctx, RequestObjectName(pidName))
	if err != nil {
		return input, err
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		return input, fmt.Errorf("read request: %w", err)
	}
	if err := json.Unmarshal(data, &input); err != nil {
		return input, fmt.Errorf("unmarshal request: %w", err)
	}
	return input, nil
}

// SaveResult persists the assembled connectivity output for a run.
func (c *Client) SaveResult(ctx context.Context, pidName string, out graphcore.Output) error {
	data, err := json.Marshal(out)
	if err != nil {
		return fmt.Errorf("marshal result: %w", err)
	}
	return c.UploadFile(ctx, ResponseObjectName(pidName), bytes.NewReader(data), int64(len(data)))
}

// LoadResult fetches a previously assembled connectivity output.
func (c *Client) LoadResult(ctx context.Context, pidName string) (graphcore.Output, error) {
	var out graphcore.Output
	obj, err := c.DownloadFile(ctx, ResponseObjectName(pidName))
	if err != nil {
		return out, err
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		return out, fmt.Errorf("read result: %w", err)
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return out, fmt.Errorf("unmarshal result: %w", err)
	}
	return out, nil
}

// SaveJobStatus persists the job-status record, mirroring
// {pid}/graph-construction/job_status.json.
func (c *Client) SaveJobStatus(ctx context.Context, pidName string, rec models.JobStatusRecord) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal job status: %w", err)
	}
	return c.UploadFile(ctx, JobStatusObjectName(pidName), bytes.NewReader(data), int64(len(data)))
}

// LoadJobStatus fetches the job-status record for a pid.
func (c *Client) LoadJobStatus(ctx context.Context, pidName string) (models.JobStatusRecord, error) {
	var rec models.JobStatusRecord
	obj, err := c.DownloadFile(ctx, JobStatusObjectName(pidName))
	if err != nil {
		return rec, err
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		return rec, fmt.Errorf("read job status: %w", err)
	}
	if err := json.Unmarshal(data, &rec); err != nil {
		return rec, fmt.Errorf("unmarshal job status: %w", err)
	}
	return rec, nil
}
