package usagestats

import "strconv"

// EventType is a usage event code as recorded by the device.
type EventType int

// Event codes with a known label.
const (
	EventNone                 EventType = 0
	EventMoveToForeground     EventType = 1
	EventMoveToBackground     EventType = 2
	EventConfigurationChange  EventType = 5
	EventUserInteraction      EventType = 7
	EventScreenInteractive    EventType = 15
	EventScreenNonInteractive EventType = 16
	EventKeyguardShown        EventType = 17
	EventKeyguardHidden       EventType = 18
)

// NoneLabel is the label of EventNone. Package summaries carrying it are
// not reported.
const NoneLabel = "NONE"

var eventLabels = map[EventType]string{
	EventNone:                 NoneLabel,
	EventMoveToForeground:     "MOVE_TO_FOREGROUND - component moved to the foreground",
	EventMoveToBackground:     "MOVE_TO_BACKGROUND - component moved to the background",
	EventConfigurationChange:  "CONFIGURATION_CHANGE - the device configuration has changed",
	EventUserInteraction:      "USER_INTERACTION - package was interacted with in some way by the user",
	EventScreenInteractive:    "SCREEN_INTERACTIVE - turned on for full user interaction",
	EventScreenNonInteractive: "SCREEN_NON_INTERACTIVE - completely turned off or turned on only in a non-interactive state",
	EventKeyguardShown:        "KEYGUARD_SHOWN - keyguard has been shown, whether or not the screen is off",
	EventKeyguardHidden:       "KEYGUARD_HIDDEN - user unlocks their phone after turning it on",
}

// Label returns the human-readable label for the code. Unknown codes are
// returned as their decimal representation.
func (e EventType) Label() string {
	if label, ok := eventLabels[e]; ok {
		return label
	}
	return strconv.Itoa(int(e))
}

// Known reports whether the code has a label.
func (e EventType) Known() bool {
	_, ok := eventLabels[e]
	return ok
}

func (e EventType) String() string {
	return e.Label()
}
