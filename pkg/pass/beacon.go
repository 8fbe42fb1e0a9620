package pass

// IBeacon is a proximity beacon at which the pass becomes relevant.
type IBeacon struct {
	// ProximityUUID identifies the beacon region. Required.
	ProximityUUID string

	// Major and Minor identify the beacon within its region. Required.
	Major uint16
	Minor uint16

	// RelevantText is shown on the lock screen near the beacon.
	RelevantText string
}

// NewBeacon creates a beacon descriptor.
func NewBeacon(proximityUUID string, major, minor uint16) IBeacon {
	return IBeacon{ProximityUUID: proximityUUID, Major: major, Minor: minor}
}

func (b IBeacon) jsonMap() map[string]any {
	m := map[string]any{
		"proximityUUID": b.ProximityUUID,
		"major":         b.Major,
		"minor":         b.Minor,
	}
	if b.RelevantText != "" {
		m["relevantText"] = b.RelevantText
	}
	return m
}
