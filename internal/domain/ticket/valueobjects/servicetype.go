package valueobjects

import "fmt"

// ServiceType is the category of appliance service a ticket requests.
type ServiceType string

const (
	ServiceACRepair             ServiceType = "ac_repair"
	ServiceACService            ServiceType = "ac_service"
	ServiceRefrigeratorRepair   ServiceType = "refrigerator_repair"
	ServiceWashingMachineRepair ServiceType = "washing_machine_repair"
	ServiceTVRepair             ServiceType = "tv_repair"
	ServiceMicrowaveRepair      ServiceType = "microwave_repair"
	ServiceOther                ServiceType = "other"
)

var serviceTypeLabels = map[ServiceType]string{
	ServiceACRepair:             "AC Repair",
	ServiceACService:            "AC Service",
	ServiceRefrigeratorRepair:   "Refrigerator Repair",
	ServiceWashingMachineRepair: "Washing Machine Repair",
	ServiceTVRepair:             "TV Repair",
	ServiceMicrowaveRepair:      "Microwave Repair",
	ServiceOther:                "Other",
}

func (s ServiceType) String() string {
	return string(s)
}

func (s ServiceType) IsValid() bool {
	_, ok := serviceTypeLabels[s]
	return ok
}

// Label returns the human-readable form used on rendered documents.
func (s ServiceType) Label() string {
	if label, ok := serviceTypeLabels[s]; ok {
		return label
	}
	return string(s)
}

func NewServiceType(s string) (ServiceType, error) {
	st := ServiceType(s)
	if !st.IsValid() {
		return "", fmt.Errorf("invalid service type: %s", s)
	}
	return st, nil
}
