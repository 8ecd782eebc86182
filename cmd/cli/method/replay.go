package method

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/linecard/autotag/pkg/convention/bus"

	"github.com/aws/aws-lambda-go/events"
	"github.com/golang-module/carbon/v2"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// LoadEvent reads either a full EventBridge event or a bare CloudTrail record
// and returns the event the Lambda runtime would have delivered for it.
func LoadEvent(content []byte, stamp bool, now time.Time) (events.CloudWatchEvent, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(content, &raw); err != nil {
		return events.CloudWatchEvent{}, fmt.Errorf("failed to decode event: %w", err)
	}

	if raw == nil {
		return events.CloudWatchEvent{}, fmt.Errorf("event is empty")
	}

	detail := raw
	envelope, isEnvelope := raw["detail"].(map[string]any)
	if isEnvelope {
		detail = envelope
	}

	if stamp {
		detail["eventTime"] = carbon.CreateFromStdTime(now, carbon.UTC).ToRfc3339String()
	}

	encoded, err := json.Marshal(detail)
	if err != nil {
		return events.CloudWatchEvent{}, fmt.Errorf("failed to encode detail: %w", err)
	}

	event := events.CloudWatchEvent{
		Version:    "0",
		DetailType: bus.DetailType,
		Time:       now.UTC(),
		Detail:     encoded,
	}

	if source, ok := detail["eventSource"].(string); ok {
		event.Source = "aws." + strings.TrimSuffix(source, ".amazonaws.com")
	}

	if region, ok := detail["awsRegion"].(string); ok {
		event.Region = region
	}

	if account, ok := detail["recipientAccountId"].(string); ok {
		event.AccountID = account
	}

	if isEnvelope {
		if id, ok := raw["id"].(string); ok {
			event.ID = id
		}
		if source, ok := raw["source"].(string); ok {
			event.Source = source
		}
		if region, ok := raw["region"].(string); ok {
			event.Region = region
		}
		if account, ok := raw["account"].(string); ok {
			event.AccountID = account
		}
	}

	if event.ID == "" {
		event.ID = uuid.NewString()
	}

	return event, nil
}

func decodeDetail(raw json.RawMessage) (map[string]any, error) {
	var detail map[string]any
	if len(raw) == 0 {
		return detail, nil
	}
	err := json.Unmarshal(raw, &detail)
	return detail, err
}
