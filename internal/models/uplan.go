package models

// DataIdentifier identifies the owner or source system of a U-plan.
type DataIdentifier struct {
	Sac string `json:"sac"`
	Sic string `json:"sic"`
}

// ContactDetails carries operator contact information.
type ContactDetails struct {
	FirstName string   `json:"firstName"`
	LastName  string   `json:"lastName"`
	Phones    []string `json:"phones"`
	Emails    []string `json:"emails"`
}

// FlightDetails describes the regulatory framing of the flight.
type FlightDetails struct {
	Mode             string `json:"mode"` // VLOS or BVLOS
	Category         string `json:"category"`
	SpecialOperation string `json:"specialOperation"`
	PrivateFlight    bool   `json:"privateFlight"`
}

// FlightCharacteristics holds the performance figures of the unmanned
// aircraft.
type FlightCharacteristics struct {
	UasMTOM       float64 `json:"uasMTOM"`
	UasMaxSpeed   float64 `json:"uasMaxSpeed"`
	Connectivity  string  `json:"Connectivity"`
	IDTechnology  string  `json:"idTechnology"`
	MaxFlightTime float64 `json:"maxFlightTime"`
}

// GeneralCharacteristics holds the airframe identity of the unmanned
// aircraft.
type GeneralCharacteristics struct {
	Brand           string `json:"brand"`
	Model           string `json:"model"`
	TypeCertificate string `json:"typeCertificate"`
	UasType         string `json:"uasType"`
	UasClass        string `json:"uasClass"`
	UasDimension    string `json:"uasDimension"`
}

// UAS bundles the aircraft description submitted with a U-plan.
type UAS struct {
	RegistrationNumber     string                 `json:"registrationNumber"`
	SerialNumber           string                 `json:"serialNumber"`
	FlightCharacteristics  FlightCharacteristics  `json:"flightCharacteristics"`
	GeneralCharacteristics GeneralCharacteristics `json:"generalCharacteristics"`
}

// PointLocation is a GeoJSON-flavored point with an altitude reference, used
// for takeoff, landing, and ground-control-station locations.
type PointLocation struct {
	Type        string     `json:"type"`
	Coordinates [2]float64 `json:"coordinates"` // [lon, lat]
	Reference   string     `json:"reference"`
	Altitude    float64    `json:"altitude"`
}

// Uplan is the full flight-authorization submission payload: identity and
// contact boilerplate around the ordered operation-volume sequence.
type Uplan struct {
	IDPlan               int               `json:"idplan"`
	NamePlan             string            `json:"nameplan"`
	DataOwnerIdentifier  DataIdentifier    `json:"dataOwnerIdentifier"`
	DataSourceIdentifier DataIdentifier    `json:"dataSourceIdentifier"`
	ContactDetails       ContactDetails    `json:"contactDetails"`
	FlightDetails        FlightDetails     `json:"flightDetails"`
	UAS                  UAS               `json:"uas"`
	TakeoffLocation      PointLocation     `json:"takeoffLocation"`
	LandingLocation      PointLocation     `json:"landingLocation"`
	GcsLocation          PointLocation     `json:"gcsLocation"`
	OperationVolumes     []OperationVolume `json:"operationVolumes"`
	OperatorID           string            `json:"operatorId"`
	State                string            `json:"state"`
	CreationTime         string            `json:"creationTime"`
	UpdateTime           string            `json:"updateTime"`
}
