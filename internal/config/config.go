package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/pidgraph-labs/pidgraph/internal/graphcore"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Valkey   ValkeyConfig
	MinIO    MinIOConfig
	Pipeline PipelineConfig
}

type ServerConfig struct {
	Host         string
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
	MaxConns int32
	MinConns int32
}

func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode)
}

type ValkeyConfig struct {
	Addr     string
	Password string
	DB       int
}

type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// PipelineConfig holds the graph-construction knobs an operator can
// tune without a redeploy. Thresholds() converts this into the
// graphcore.Thresholds a pipeline run actually consumes, normalizing
// every *_pixels field against the job's image dimensions.
type PipelineConfig struct {
	ArrowSymbolLabel                           string
	CentroidDistanceThreshold                  float64
	FlowDirectionAssetPrefixes                 []string
	ValveSymbolPrefix                          string
	SymbolLabelPrefixesWithText                []string
	SymbolLabelPrefixesToConnectIfClose        []string
	SymbolLabelForConnectors                   []string
	LineSegmentPaddingDefault                  float64
	GraphLineBufferPixels                      float64
	GraphDistanceThresholdForSymbolsPixels     float64
	GraphDistanceThresholdForTextPixels        float64
	GraphDistanceThresholdForLinesPixels       float64
	GraphSymbolToSymbolDistanceThresholdPixels float64
	GraphSymbolToSymbolOverlapRegionThreshold  float64
	SymbolOverlapThreshold                     float64
	WorkersCountForDataBatch                   int
	ExhaustiveSearch                           bool
}

// Thresholds builds the graphcore.Thresholds for a single run, normalizing
// this config's pixel fields against the job's longest image dimension.
func (p PipelineConfig) Thresholds(maxDimensionPx float64) graphcore.Thresholds {
	base := graphcore.Thresholds{
		ArrowSymbolLabel:                          p.ArrowSymbolLabel,
		CentroidDistanceThreshold:                 p.CentroidDistanceThreshold,
		FlowDirectionAssetPrefixes:                p.FlowDirectionAssetPrefixes,
		ValveSymbolPrefix:                         p.ValveSymbolPrefix,
		SymbolLabelPrefixesWithText:               p.SymbolLabelPrefixesWithText,
		SymbolLabelPrefixesToConnectIfClose:       p.SymbolLabelPrefixesToConnectIfClose,
		SymbolLabelForConnectors:                  p.SymbolLabelForConnectors,
		GraphSymbolToSymbolOverlapRegionThreshold: p.GraphSymbolToSymbolOverlapRegionThreshold,
		SymbolOverlapThreshold:                    p.SymbolOverlapThreshold,
		WorkersCountForDataBatch:                  p.WorkersCountForDataBatch,
		ExhaustiveSearch:                          p.ExhaustiveSearch,
	}
	pixels := graphcore.PixelThresholds{
		LineSegmentPaddingDefault:                  p.LineSegmentPaddingDefault,
		GraphLineBufferPixels:                      p.GraphLineBufferPixels,
		GraphDistanceThresholdForSymbolsPixels:      p.GraphDistanceThresholdForSymbolsPixels,
		GraphDistanceThresholdForTextPixels:         p.GraphDistanceThresholdForTextPixels,
		GraphDistanceThresholdForLinesPixels:        p.GraphDistanceThresholdForLinesPixels,
		GraphSymbolToSymbolDistanceThresholdPixels:  p.GraphSymbolToSymbolDistanceThresholdPixels,
	}
	return base.WithPixels(pixels, maxDimensionPx)
}

func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Host:         getEnv("SERVER_HOST", "0.0.0.0"),
			Port:         getEnvInt("SERVER_PORT", 8080),
			ReadTimeout:  time.Duration(getEnvInt("SERVER_READ_TIMEOUT_SECS", 30)) * time.Second,
			WriteTimeout: time.Duration(getEnvInt("SERVER_WRITE_TIMEOUT_SECS", 60)) * time.Second,
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnvInt("DB_PORT", 5432),
			User:     getEnv("DB_USER", "pidgraph"),
			Password: getEnv("DB_PASSWORD", "pidgraph"),
			Name:     getEnv("DB_NAME", "pidgraph"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
			MaxConns: int32(getEnvInt("DB_MAX_CONNS", 25)),
			MinConns: int32(getEnvInt("DB_MIN_CONNS", 5)),
		},
		Valkey: ValkeyConfig{
			Addr:     getEnv("VALKEY_ADDR", "localhost:6379"),
			Password: getEnv("VALKEY_PASSWORD", ""),
			DB:       getEnvInt("VALKEY_DB", 0),
		},
		MinIO: MinIOConfig{
			Endpoint:  getEnv("MINIO_ENDPOINT", "localhost:9000"),
			AccessKey: getEnv("MINIO_ACCESS_KEY", "pidgraph"),
			SecretKey: getEnv("MINIO_SECRET_KEY", "pidgraph123"),
			Bucket:    getEnv("MINIO_BUCKET", "pidgraph"),
			UseSSL:    getEnvBool("MINIO_USE_SSL", false),
		},
		Pipeline: loadPipelineConfig(),
	}
	return cfg, nil
}

func loadPipelineConfig() PipelineConfig {
	d := graphcore.DefaultThresholds()
	return PipelineConfig{
		ArrowSymbolLabel:                           getEnv("PIPELINE_ARROW_SYMBOL_LABEL", d.ArrowSymbolLabel),
		CentroidDistanceThreshold:                   getEnvFloat("PIPELINE_CENTROID_DISTANCE_THRESHOLD", d.CentroidDistanceThreshold),
		FlowDirectionAssetPrefixes:                  getEnvStringList("PIPELINE_FLOW_DIRECTION_ASSET_PREFIXES", d.FlowDirectionAssetPrefixes),
		ValveSymbolPrefix:                            getEnv("PIPELINE_VALVE_SYMBOL_PREFIX", d.ValveSymbolPrefix),
		SymbolLabelPrefixesWithText:                  getEnvStringList("PIPELINE_SYMBOL_LABEL_PREFIXES_WITH_TEXT", d.SymbolLabelPrefixesWithText),
		SymbolLabelPrefixesToConnectIfClose:          getEnvStringList("PIPELINE_SYMBOL_LABEL_PREFIXES_TO_CONNECT_IF_CLOSE", d.SymbolLabelPrefixesToConnectIfClose),
		SymbolLabelForConnectors:                     getEnvStringList("PIPELINE_SYMBOL_LABEL_FOR_CONNECTORS", d.SymbolLabelForConnectors),
		LineSegmentPaddingDefault:                    getEnvFloat("PIPELINE_LINE_SEGMENT_PADDING_DEFAULT", d.LineSegmentPaddingDefault),
		GraphLineBufferPixels:                        getEnvFloat("PIPELINE_GRAPH_LINE_BUFFER_PIXELS", 5.0),
		GraphDistanceThresholdForSymbolsPixels:        getEnvFloat("PIPELINE_GRAPH_DISTANCE_THRESHOLD_FOR_SYMBOLS_PIXELS", 5.0),
		GraphDistanceThresholdForTextPixels:           getEnvFloat("PIPELINE_GRAPH_DISTANCE_THRESHOLD_FOR_TEXT_PIXELS", 5.0),
		GraphDistanceThresholdForLinesPixels:          getEnvFloat("PIPELINE_GRAPH_DISTANCE_THRESHOLD_FOR_LINES_PIXELS", 50.0),
		GraphSymbolToSymbolDistanceThresholdPixels:    getEnvFloat("PIPELINE_GRAPH_SYMBOL_TO_SYMBOL_DISTANCE_THRESHOLD_PIXELS", 10.0),
		GraphSymbolToSymbolOverlapRegionThreshold:     getEnvFloat("PIPELINE_GRAPH_SYMBOL_TO_SYMBOL_OVERLAP_REGION_THRESHOLD", d.GraphSymbolToSymbolOverlapRegionThreshold),
		SymbolOverlapThreshold:                        getEnvFloat("PIPELINE_SYMBOL_OVERLAP_THRESHOLD", d.SymbolOverlapThreshold),
		WorkersCountForDataBatch:                      getEnvInt("PIPELINE_WORKERS_COUNT_FOR_DATA_BATCH", d.WorkersCountForDataBatch),
		ExhaustiveSearch:                              getEnvBool("PIPELINE_EXHAUSTIVE_SEARCH", d.ExhaustiveSearch),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func getEnvStringList(key string, fallback []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}
