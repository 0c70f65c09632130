package models

// OutingField names one editable text field of an OutingRecord
type OutingField string

const (
	FieldDay          OutingField = "day"
	FieldTime         OutingField = "time"
	FieldGroup        OutingField = "group"
	FieldMeetingPlace OutingField = "meetingPlace"
	FieldAddress      OutingField = "address"
	FieldTerritories  OutingField = "territories"
	FieldConductor    OutingField = "conductor"
	FieldMapsLink     OutingField = "mapsLink"
	FieldNotes        OutingField = "notes"
)

// fieldLabels maps each field to the label shown in the change log
var fieldLabels = map[OutingField]string{
	FieldDay:          "Día",
	FieldTime:         "Hora",
	FieldGroup:        "Grupo",
	FieldMeetingPlace: "Lugar de encuentro",
	FieldAddress:      "Dirección",
	FieldTerritories:  "Territorios",
	FieldConductor:    "Conductor",
	FieldMapsLink:     "Enlace de Mapa",
	FieldNotes:        "Notas",
}

// DaysOfWeek lists the day labels offered to editors
var DaysOfWeek = []string{"Lunes", "Martes", "Miércoles", "Jueves", "Viernes", "Sábado", "Domingo"}

// Label returns the human readable label of the field
func (f OutingField) Label() (string, bool) {
	label, ok := fieldLabels[f]
	return label, ok
}

// Valid reports whether f names a known field
func (f OutingField) Valid() bool {
	_, ok := fieldLabels[f]
	return ok
}

// OutingRecord represents one scheduled outreach shift
type OutingRecord struct {
	ID           string `json:"id"`
	Day          string `json:"day"`
	Time         string `json:"time"`
	Group        string `json:"group"`
	MeetingPlace string `json:"meetingPlace"`
	Address      string `json:"address"`
	Territories  string `json:"territories"`
	Conductor    string `json:"conductor"`
	MapsLink     string `json:"mapsLink"`
	Notes        string `json:"notes"`
}

// NewOutingRecord returns a record filled with the placeholder values used for new cards
func NewOutingRecord(id string) OutingRecord {
	return OutingRecord{
		ID:           id,
		Day:          "Lunes",
		Time:         "00:00",
		Group:        "",
		MeetingPlace: "Nueva Salida",
		Address:      "Dirección...",
		Territories:  "Territorios...",
		Conductor:    "Conductor...",
		MapsLink:     "",
	}
}

func (o *OutingRecord) fieldPtr(field OutingField) *string {
	switch field {
	case FieldDay:
		return &o.Day
	case FieldTime:
		return &o.Time
	case FieldGroup:
		return &o.Group
	case FieldMeetingPlace:
		return &o.MeetingPlace
	case FieldAddress:
		return &o.Address
	case FieldTerritories:
		return &o.Territories
	case FieldConductor:
		return &o.Conductor
	case FieldMapsLink:
		return &o.MapsLink
	case FieldNotes:
		return &o.Notes
	}
	return nil
}

// Set replaces the value of the named field. It returns false for unknown fields.
func (o *OutingRecord) Set(field OutingField, value string) bool {
	p := o.fieldPtr(field)
	if p == nil {
		return false
	}
	*p = value
	return true
}

// Get returns the value of the named field
func (o *OutingRecord) Get(field OutingField) (string, bool) {
	p := o.fieldPtr(field)
	if p == nil {
		return "", false
	}
	return *p, true
}

// SeedOutings returns the roster the board starts with
func SeedOutings() []OutingRecord {
	return []OutingRecord{
		{
			Day:          "Sábado",
			Time:         "9:30am",
			Group:        "Grupo 1",
			MeetingPlace: "Av. 157 Av. 147 y Calle 156",
			Address:      "Av. 147 Calle 140",
			Territories:  "Territorios: 75 - 80",
			Conductor:    "Conductor: Santiago Fijor",
			MapsLink:     "https://maps.google.com",
		},
		{
			Day:          "Sábado",
			Time:         "4:00pm",
			Group:        "Grupo 2",
			MeetingPlace: "Grupo Casa Familia Martinez",
			Address:      "Av. Los Girasoles y Gato Onza",
			Territories:  "Territorios: 75 - 82",
			Conductor:    "Conductor: Santiago Fijor",
			MapsLink:     "https://maps.google.com",
		},
		{
			Day:          "Domingo",
			Time:         "08:30",
			Group:        "",
			MeetingPlace: "Calle 196 & Calle 151",
			Address:      "Grupo 4",
			Territories:  "Territorios: 45, 46",
			Conductor:    "Conductor: Balbuena Lucas",
			MapsLink:     "",
		},
	}
}
