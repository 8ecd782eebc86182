package mock

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/rs/zerolog/log"
)

// CloudTrail records, one per supported event, named <service>.<eventName>.json.
//
//go:embed fixtures/*
var fixtures embed.FS

func path(source, name string) string {
	return strings.TrimSuffix(source, ".amazonaws.com") + "." + name + ".json"
}

// Detail decodes the CloudTrail record for the given event source and name.
func Detail(source, name string) map[string]any {
	var detail map[string]any
	if err := json.Unmarshal([]byte(Read(path(source, name))), &detail); err != nil {
		log.Fatal().Err(err).Msg("failed to decode fixture")
	}
	return detail
}

// Event wraps the CloudTrail record in the envelope EventBridge delivers.
func Event(source, name string) events.CloudWatchEvent {
	compacted, err := JsonCompact([]byte(Read(path(source, name))))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to compact fixture")
	}

	event := EventFromDetail(compacted)
	event.Source = "aws." + strings.TrimSuffix(source, ".amazonaws.com")
	return event
}

func EventFromDetail(detail []byte) events.CloudWatchEvent {
	return events.CloudWatchEvent{
		Version:    "0",
		ID:         "6a7e8feb-b491-4cf7-a9f1-bf3703467718",
		DetailType: "AWS API Call via CloudTrail",
		Source:     "aws.cloudtrail",
		AccountID:  "123456789012",
		Time:       time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		Region:     "us-east-1",
		Detail:     detail,
	}
}

func JsonCompact(byteContent []byte) ([]byte, error) {
	compacted := new(bytes.Buffer)

	if !json.Valid(byteContent) {
		return []byte{}, fmt.Errorf("invalid JSON in fixture")
	}

	if err := json.Compact(compacted, byteContent); err != nil {
		return []byte{}, err
	}

	return compacted.Bytes(), nil
}

func Read(src string) string {
	sourceFile, err := fixtures.Open("fixtures/" + src)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open source file")
	}
	defer sourceFile.Close()

	var builder strings.Builder
	if _, err := io.Copy(&builder, sourceFile); err != nil {
		log.Fatal().Err(err).Msg("failed to read source file")
	}

	return builder.String()
}
