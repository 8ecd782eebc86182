package extract

// Extractor pulls the identifiers of created resources out of a CloudTrail
// event detail. An empty result means no identifier was found.
type Extractor func(detail map[string]any) []string

// Scalar extracts a single string found at path.
func Scalar(path ...string) Extractor {
	return func(detail map[string]any) []string {
		if id, ok := Of(detail).Get(path...).String(); ok {
			return []string{id}
		}
		return nil
	}
}

// FirstOf extracts field from the first element of the list found at path.
func FirstOf(field string, path ...string) Extractor {
	return func(detail map[string]any) []string {
		items := Of(detail).Get(path...).Items()
		if len(items) == 0 {
			return nil
		}
		if id, ok := items[0].Get(field).String(); ok {
			return []string{id}
		}
		return nil
	}
}

// RunInstances collects every launched instance id together with the ids
// of the EBS volumes attached through its block device mappings.
func RunInstances(detail map[string]any) []string {
	ids := []string{}
	for _, instance := range Of(detail).Get("responseElements", "instancesSet", "items").Items() {
		if id, ok := instance.Get("instanceId").String(); ok {
			ids = append(ids, id)
		}
		for _, device := range instance.Get("blockDeviceMapping", "items").Items() {
			if id, ok := device.Get("ebs", "volumeId").String(); ok {
				ids = append(ids, id)
			}
		}
	}
	return ids
}
