package event

import (
	"reflect"
	"strings"
	"sync"
)

var (
	registryOnce  sync.Once
	nameToType    = make(map[string]EventType)
	typeToName    = make(map[EventType]string)
	typeToPayload = make(map[EventType]reflect.Type)
)

// RegisterType maps a string name to an EventType and its payload struct type
// Pass nil if the event has no payload
func RegisterType(name string, et EventType, payloadInstance any) {
	nameToType[name] = et
	typeToName[et] = name
	if payloadInstance != nil {
		t := reflect.TypeOf(payloadInstance)
		if t.Kind() == reflect.Ptr {
			t = t.Elem()
		}
		typeToPayload[et] = t
	}
}

// GetEventType returns the EventType for a given name
func GetEventType(name string) (EventType, bool) {
	initRegistry()
	if strings.EqualFold(name, "Tick") {
		return EventTick, true
	}
	et, ok := nameToType[name]
	return et, ok
}

// GetEventName returns the string name for an EventType
func GetEventName(et EventType) string {
	initRegistry()
	if et == EventTick {
		return "Tick"
	}
	if name, ok := typeToName[et]; ok {
		return name
	}
	return "Unknown"
}

// NewPayloadStruct returns a new pointer to a zero-value payload struct for the event type
// Returns nil if no payload is registered
func NewPayloadStruct(et EventType) any {
	initRegistry()
	t, ok := typeToPayload[et]
	if !ok {
		return nil
	}
	return reflect.New(t).Interface()
}

func (et EventType) String() string {
	return GetEventName(et)
}

func initRegistry() {
	registryOnce.Do(func() {
		RegisterType("Press", EventPress, nil)
		RegisterType("Release", EventRelease, nil)

		RegisterType("PhaseChanged", EventPhaseChanged, &PhaseChangedPayload{})
		RegisterType("ChargeStarted", EventChargeStarted, &SessionPayload{})
		RegisterType("ChargeArmed", EventChargeArmed, &SessionPayload{})
		RegisterType("CommitOpened", EventCommitOpened, &SessionPayload{})
		RegisterType("CommitConfirmed", EventCommitConfirmed, &SessionPayload{})
		RegisterType("ShotFired", EventShotFired, &ShotFiredPayload{})
		RegisterType("ChargeCancelled", EventChargeCancelled, &ChargeCancelledPayload{})
		RegisterType("RestComplete", EventRestComplete, &SessionPayload{})

		RegisterType("SunlightToggle", EventSunlightToggle, nil)
		RegisterType("EnergyDrain", EventEnergyDrain, &EnergyDrainPayload{})
		RegisterType("PauseToggle", EventPauseToggle, nil)
		RegisterType("Quit", EventQuit, nil)
	})
}
