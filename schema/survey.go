package schema

import "strconv"

// SurveyResponse is one submission of the commerce survey. JSON names are the
// field keys of the catalog.
type SurveyResponse struct {
	Timestamp    string      `json:"fecha,omitempty"`
	Canton       string      `json:"canton,omitempty"`
	District     string      `json:"distrito"`
	Age          int         `json:"edad,omitempty"`
	Sex          string      `json:"sexo"`
	Education    string      `json:"escolaridad"`
	BusinessType string      `json:"tipo_local"`
	Location     *Coordinate `json:"ubicacion,omitempty"`

	SafetyPerception  string    `json:"percepcion_seguridad"`
	InsecurityFactors Selection `json:"factores_inseguridad,omitempty"`
	SocialFactors     Selection `json:"factores_sociales,omitempty"`
	SocialInvestment  Selection `json:"inversion_social,omitempty"`
	DrugUse           Selection `json:"consumo_drogas,omitempty"`
	Bunkers           Selection `json:"bunkers,omitempty"`
	ZoneCrimes        Selection `json:"delitos_zona,omitempty"`
	DrugSales         Selection `json:"venta_drogas,omitempty"`
	LifeCrimes        Selection `json:"delitos_vida,omitempty"`
	SexualCrimes      Selection `json:"delitos_sexuales,omitempty"`
	Assaults          Selection `json:"asaltos,omitempty"`
	Frauds            Selection `json:"estafas,omitempty"`
	Thefts            Selection `json:"robos,omitempty"`

	ControlObservation string    `json:"observacion_control,omitempty"`
	ControlDescription Selection `json:"descripcion_control,omitempty"`

	Victim          string    `json:"victima"`
	NoReportReasons Selection `json:"motivo_no_denuncia,omitempty"`
	CrimeType       Selection `json:"tipo_delito,omitempty"`
	CrimeSchedule   string    `json:"horario_delito"`
	OperatingMode   Selection `json:"modo_operar,omitempty"`

	Quota            string `json:"exigencia_cuota"`
	QuotaDescription string `json:"descripcion_cuota,omitempty"`

	PoliceRating       string `json:"opinion_fp"`
	ServiceChange      string `json:"cambio_servicio"`
	PoliceAcquaintance string `json:"conocimiento_policias"`
	Program            string `json:"participacion_programa"`
	ProgramContact     string `json:"deseo_participar,omitempty"`

	PoliceMeasures    string `json:"medidas_fp,omitempty"`
	MunicipalMeasures string `json:"medidas_muni,omitempty"`
	AdditionalInfo    string `json:"info_adicional,omitempty"`
}

func (r *SurveyResponse) texts() map[string]*string {
	return map[string]*string{
		FieldTimestamp:          &r.Timestamp,
		FieldCanton:             &r.Canton,
		FieldDistrict:           &r.District,
		FieldSex:                &r.Sex,
		FieldEducation:          &r.Education,
		FieldBusinessType:       &r.BusinessType,
		FieldSafetyPerception:   &r.SafetyPerception,
		FieldControlObservation: &r.ControlObservation,
		FieldVictim:             &r.Victim,
		FieldCrimeSchedule:      &r.CrimeSchedule,
		FieldQuota:              &r.Quota,
		FieldQuotaDescription:   &r.QuotaDescription,
		FieldPoliceRating:       &r.PoliceRating,
		FieldServiceChange:      &r.ServiceChange,
		FieldPoliceAcquaintance: &r.PoliceAcquaintance,
		FieldProgram:            &r.Program,
		FieldProgramContact:     &r.ProgramContact,
		FieldPoliceMeasures:     &r.PoliceMeasures,
		FieldMunicipalMeasures:  &r.MunicipalMeasures,
		FieldAdditionalInfo:     &r.AdditionalInfo,
	}
}

func (r *SurveyResponse) selections() map[string]*Selection {
	return map[string]*Selection{
		FieldInsecurityFactors:  &r.InsecurityFactors,
		FieldSocialFactors:      &r.SocialFactors,
		FieldSocialInvestment:   &r.SocialInvestment,
		FieldDrugUse:            &r.DrugUse,
		FieldBunkers:            &r.Bunkers,
		FieldZoneCrimes:         &r.ZoneCrimes,
		FieldDrugSales:          &r.DrugSales,
		FieldLifeCrimes:         &r.LifeCrimes,
		FieldSexualCrimes:       &r.SexualCrimes,
		FieldAssaults:           &r.Assaults,
		FieldFrauds:             &r.Frauds,
		FieldThefts:             &r.Thefts,
		FieldControlDescription: &r.ControlDescription,
		FieldNoReportReasons:    &r.NoReportReasons,
		FieldCrimeType:          &r.CrimeType,
		FieldOperatingMode:      &r.OperatingMode,
	}
}

// Value returns the cell the field is persisted as.
func (r *SurveyResponse) Value(key string) string {
	switch key {
	case FieldAge:
		if r.Age == 0 {
			return ""
		}
		return strconv.Itoa(r.Age)
	case FieldLocation:
		if r.Location == nil {
			return ""
		}
		return r.Location.MapLink()
	}

	if s, ok := r.selections()[key]; ok {
		return s.String()
	}
	if t, ok := r.texts()[key]; ok {
		return *t
	}
	return ""
}

// Selected returns the labels of a multi-select field, nil for other fields.
func (r *SurveyResponse) Selected(key string) Selection {
	if s, ok := r.selections()[key]; ok {
		return *s
	}
	return nil
}

// Answered reports whether the field holds a non-empty answer.
func (r *SurveyResponse) Answered(key string) bool {
	return r.Value(key) != ""
}

// Clear drops the answer of a field.
func (r *SurveyResponse) Clear(key string) {
	switch key {
	case FieldAge:
		r.Age = 0
		return
	case FieldLocation:
		r.Location = nil
		return
	}

	if s, ok := r.selections()[key]; ok {
		*s = nil
		return
	}
	if t, ok := r.texts()[key]; ok {
		*t = ""
	}
}

// Row serializes the response positionally, one cell per catalog field.
func (r *SurveyResponse) Row() []string {
	row := make([]string, 0, len(Fields))
	for _, f := range Fields {
		row = append(row, r.Value(f.Key))
	}
	return row
}
