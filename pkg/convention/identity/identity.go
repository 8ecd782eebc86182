package identity

import "strings"

const Unknown = "Unknown"

// Principal types found in the CloudTrail userIdentity.type field.
const (
	TypeIAMUser       = "IAMUser"
	TypeAssumedRole   = "AssumedRole"
	TypeRoot          = "Root"
	TypeFederatedUser = "FederatedUser"
)

// ExtractOwner reduces a CloudTrail userIdentity record to a human readable owner.
// It accepts whatever the event decoder produced and never fails; anything it
// cannot classify is reported as Unknown.
func ExtractOwner(identity any) string {
	record, ok := identity.(map[string]any)
	if !ok {
		return Unknown
	}

	kind, _ := record["type"].(string)

	switch kind {
	case TypeIAMUser, TypeFederatedUser:
		return field(record, "userName")

	case TypeAssumedRole:
		arn, _ := record["arn"].(string)
		i := strings.LastIndex(arn, "/")
		if i < 0 || i == len(arn)-1 {
			return Unknown
		}
		return arn[i+1:]

	case TypeRoot:
		return "root"

	default:
		return Unknown
	}
}

// CreatorArn returns the principal ARN recorded on the event, or Unknown.
func CreatorArn(identity any) string {
	record, ok := identity.(map[string]any)
	if !ok {
		return Unknown
	}
	return field(record, "arn")
}

func field(record map[string]any, key string) string {
	if v, ok := record[key].(string); ok && v != "" {
		return v
	}
	return Unknown
}
