package schema

type FieldKind string

const (
	KindTimestamp FieldKind = "timestamp"
	KindText      FieldKind = "text"
	KindNumber    FieldKind = "number"
	KindSingle    FieldKind = "single"
	KindMulti     FieldKind = "multi"
	KindLocation  FieldKind = "location"
)

// Field keys, also used as JSON names of a submission.
const (
	FieldTimestamp          = "fecha"
	FieldCanton             = "canton"
	FieldDistrict           = "distrito"
	FieldAge                = "edad"
	FieldSex                = "sexo"
	FieldEducation          = "escolaridad"
	FieldBusinessType       = "tipo_local"
	FieldLocation           = "ubicacion"
	FieldSafetyPerception   = "percepcion_seguridad"
	FieldInsecurityFactors  = "factores_inseguridad"
	FieldSocialFactors      = "factores_sociales"
	FieldSocialInvestment   = "inversion_social"
	FieldDrugUse            = "consumo_drogas"
	FieldBunkers            = "bunkers"
	FieldZoneCrimes         = "delitos_zona"
	FieldDrugSales          = "venta_drogas"
	FieldLifeCrimes         = "delitos_vida"
	FieldSexualCrimes       = "delitos_sexuales"
	FieldAssaults           = "asaltos"
	FieldFrauds             = "estafas"
	FieldThefts             = "robos"
	FieldControlObservation = "observacion_control"
	FieldControlDescription = "descripcion_control"
	FieldVictim             = "victima"
	FieldNoReportReasons    = "motivo_no_denuncia"
	FieldCrimeType          = "tipo_delito"
	FieldCrimeSchedule      = "horario_delito"
	FieldOperatingMode      = "modo_operar"
	FieldQuota              = "exigencia_cuota"
	FieldQuotaDescription   = "descripcion_cuota"
	FieldPoliceRating       = "opinion_fp"
	FieldServiceChange      = "cambio_servicio"
	FieldPoliceAcquaintance = "conocimiento_policias"
	FieldProgram            = "participacion_programa"
	FieldProgramContact     = "deseo_participar"
	FieldPoliceMeasures     = "medidas_fp"
	FieldMunicipalMeasures  = "medidas_muni"
	FieldAdditionalInfo     = "info_adicional"
)

const (
	MinAge = 12
	MaxAge = 120
)

// Field describes one column of the response table.
type Field struct {
	Key      string    `json:"key"`
	Column   string    `json:"column"`
	Aliases  []string  `json:"-"`
	Label    string    `json:"label"`
	Question string    `json:"question"`
	Kind     FieldKind `json:"kind"`
	Options  []string  `json:"options,omitempty"`
	Required bool      `json:"required"`
}

// Columns returns the header names accepted for this field when reading,
// the write-time column first.
func (f Field) Columns() []string {
	return append([]string{f.Column}, f.Aliases...)
}

// HasOption reports whether v belongs to the closed vocabulary of the field.
// Fields without a vocabulary accept anything.
func (f Field) HasOption(v string) bool {
	if len(f.Options) == 0 {
		return true
	}
	for _, o := range f.Options {
		if o == v {
			return true
		}
	}
	return false
}

// Fields is the response table layout. Row order is the append order and
// must match the header row of the backing store.
var Fields = []Field{
	{Key: FieldTimestamp, Column: "Fecha y hora", Aliases: []string{"Timestamp", "Marca temporal"}, Label: "Fecha y hora", Kind: KindTimestamp},
	{Key: FieldCanton, Column: "Cantón", Aliases: []string{"Canton"}, Label: "Cantón", Kind: KindText},
	{Key: FieldDistrict, Column: "Distrito", Label: "Distrito", Question: "Distrito:", Kind: KindSingle, Options: DistrictOptions, Required: true},
	{Key: FieldAge, Column: "Edad", Label: "Edad", Question: "Edad:", Kind: KindNumber},
	{Key: FieldSex, Column: "Sexo", Label: "Sexo", Question: "Sexo:", Kind: KindSingle, Options: SexOptions, Required: true},
	{Key: FieldEducation, Column: "Escolaridad", Label: "Escolaridad", Question: "Escolaridad:", Kind: KindSingle, Options: EducationOptions, Required: true},
	{Key: FieldBusinessType, Column: "Tipo de local comercial", Aliases: []string{"Tipo de local"}, Label: "Tipo de local comercial", Question: "Tipo de local comercial:", Kind: KindSingle, Options: BusinessTypeOptions, Required: true},
	{Key: FieldLocation, Column: "Ubicación", Aliases: []string{"Ubicación en el mapa", "Ubicacion"}, Label: "Ubicación en el mapa", Question: "Seleccione su ubicación en el mapa:", Kind: KindLocation, Required: true},
	{Key: FieldSafetyPerception, Column: "Percepción de seguridad", Label: "Percepción de seguridad", Question: "¿Qué tan seguro(a) se siente en esta zona comercial?", Kind: KindSingle, Options: SafetyPerceptionOptions, Required: true},
	{Key: FieldInsecurityFactors, Column: "Factores de inseguridad (selección múltiple)", Aliases: []string{"Factores de inseguridad"}, Label: "Factores de inseguridad", Question: "¿Por qué se siente inseguro(a)? (Seleccione las que aplican)", Kind: KindMulti, Options: InsecurityFactorOptions},
	{Key: FieldSocialFactors, Column: "Factores de riesgo social", Aliases: []string{"Factores sociales"}, Label: "Factores de riesgo social", Question: "¿Cuáles de los siguientes factores afectan la seguridad en su zona comercial?", Kind: KindMulti, Options: SocialFactorOptions},
	{Key: FieldSocialInvestment, Column: "Inversión social faltante", Aliases: []string{"Inversión social"}, Label: "Inversión social faltante", Question: "¿Qué tipo de inversión social considera que falta?", Kind: KindMulti, Options: SocialInvestmentOptions},
	{Key: FieldDrugUse, Column: "Consumo de drogas", Label: "Consumo de drogas", Question: "¿Dónde percibe consumo de drogas?", Kind: KindMulti, Options: DrugUseOptions},
	{Key: FieldBunkers, Column: "Búnkers o sitios de oportunidad", Aliases: []string{"Búnkers"}, Label: "Búnkers o sitios de oportunidad", Question: "¿Dónde ha notado posibles búnkers o sitios de oportunidad?", Kind: KindMulti, Options: BunkerOptions},
	{Key: FieldZoneCrimes, Column: "Delitos en la zona", Aliases: []string{"Delitos alrededor del comercio"}, Label: "Delitos en la zona", Question: "¿Qué delitos considera que ocurren alrededor de su comercio?", Kind: KindMulti, Options: ZoneCrimeOptions},
	{Key: FieldDrugSales, Column: "Venta de drogas", Label: "Venta de drogas", Question: "¿Dónde ocurre la venta de drogas?", Kind: KindMulti, Options: DrugSaleOptions},
	{Key: FieldLifeCrimes, Column: "Delitos contra la vida", Label: "Delitos contra la vida", Question: "¿Qué delitos contra la vida ha observado?", Kind: KindMulti, Options: LifeCrimeOptions},
	{Key: FieldSexualCrimes, Column: "Delitos sexuales", Label: "Delitos sexuales", Question: "¿Qué delitos sexuales ha percibido?", Kind: KindMulti, Options: SexualCrimeOptions},
	{Key: FieldAssaults, Column: "Asaltos", Label: "Asaltos", Question: "¿Qué tipos de asaltos considera que ocurren?", Kind: KindMulti, Options: AssaultOptions},
	{Key: FieldFrauds, Column: "Estafas", Label: "Estafas", Question: "¿Qué tipos de estafas ha observado?", Kind: KindMulti, Options: FraudOptions},
	{Key: FieldThefts, Column: "Robos", Label: "Robos", Question: "¿Qué tipos de robos ha identificado?", Kind: KindMulti, Options: TheftOptions},
	{Key: FieldControlObservation, Column: "Observación de control", Aliases: []string{"Control territorial"}, Label: "Observación de control", Question: "¿Ha notado la presencia de personas o grupos que aparentan ejercer control sobre la actividad comercial?", Kind: KindSingle, Options: ControlObservationOptions},
	{Key: FieldControlDescription, Column: "Descripción de control", Label: "Descripción de control", Question: "Describa qué tipo de comportamientos ha observado:", Kind: KindMulti, Options: ControlDescriptionOptions},
	{Key: FieldVictim, Column: "Victimización", Aliases: []string{"Víctima"}, Label: "Victimización", Question: "¿Usted o su local comercial han sido víctimas de algún delito en los últimos 12 meses?", Kind: KindSingle, Options: VictimOptions, Required: true},
	{Key: FieldNoReportReasons, Column: "Motivo de no denuncia", Label: "Motivo de no denuncia", Question: "¿Por qué no presentó la denuncia?", Kind: KindMulti, Options: NoReportReasonOptions},
	{Key: FieldCrimeType, Column: "Tipo de delito", Aliases: []string{"Qué delitos sufrió", "¿Qué delito sufrió?"}, Label: "Tipo de delito", Question: "¿Qué delito sufrió?", Kind: KindMulti, Options: CrimeTypeOptions},
	{Key: FieldCrimeSchedule, Column: "Horario del hecho", Aliases: []string{"Horario del delito"}, Label: "Horario del hecho", Question: "¿Conoce el horario en el que ocurrió el hecho delictivo?", Kind: KindSingle, Options: CrimeScheduleOptions, Required: true},
	{Key: FieldOperatingMode, Column: "Modo de operar", Label: "Modo de operar", Question: "¿Cómo operaban los responsables?", Kind: KindMulti, Options: OperatingModeOptions},
	{Key: FieldQuota, Column: "Exigencia de cuota", Label: "Exigencia de cuota", Question: "¿Ha recibido su local comercial algún tipo de exigencia económica o cuota obligatoria?", Kind: KindSingle, Options: QuotaOptions, Required: true},
	{Key: FieldQuotaDescription, Column: "Descripción de cuota", Label: "Descripción de cuota", Question: "Detalle cómo ocurrió (frecuencia, forma de contacto, tipo de exigencia):", Kind: KindText},
	{Key: FieldPoliceRating, Column: "Opinión sobre Fuerza Pública", Label: "Opinión sobre Fuerza Pública", Question: "¿Cómo califica el servicio policial de la Fuerza Pública cerca de su local?", Kind: KindSingle, Options: PoliceRatingOptions, Required: true},
	{Key: FieldServiceChange, Column: "Cambio de servicio", Label: "Cambio de servicio", Question: "¿Cómo ha cambiado el servicio en los últimos 12 meses?", Kind: KindSingle, Options: ServiceChangeOptions, Required: true},
	{Key: FieldPoliceAcquaintance, Column: "Conocimiento de policías", Label: "Conocimiento de policías", Question: "¿Conoce a los policías de Fuerza Pública o Policía Turística que patrullan su zona comercial?", Kind: KindSingle, Options: PoliceAcquaintanceOptions, Required: true},
	{Key: FieldProgram, Column: "Participación en programa comercial", Label: "Participación en programa comercial", Question: "¿Conoce o participa en el Programa de Seguridad Comercial de la Fuerza Pública?", Kind: KindSingle, Options: ProgramOptions, Required: true},
	{Key: FieldProgramContact, Column: "Deseo de participar", Label: "Deseo de participar", Question: "Si desea ser contactado para formar parte del programa, indique nombre del comercio, correo electrónico y número de teléfono:", Kind: KindText},
	{Key: FieldPoliceMeasures, Column: "Medidas Fuerza Pública", Label: "Medidas Fuerza Pública", Question: "¿Qué medidas considera importantes que implemente la Fuerza Pública para mejorar la seguridad en su zona comercial?", Kind: KindText},
	{Key: FieldMunicipalMeasures, Column: "Medidas Municipalidad", Label: "Medidas Municipalidad", Question: "¿Qué medidas considera necesarias por parte de la Municipalidad para mejorar la seguridad en su zona comercial?", Kind: KindText},
	{Key: FieldAdditionalInfo, Column: "Información adicional", Label: "Información adicional", Question: "¿Desea agregar alguna otra información que considere pertinente?", Kind: KindText},
}

var fieldByKey = map[string]Field{}

func init() {
	for _, f := range Fields {
		fieldByKey[f.Key] = f
	}
}

// FieldByKey looks up a field of the catalog.
func FieldByKey(key string) (Field, bool) {
	f, ok := fieldByKey[key]
	return f, ok
}

// Header returns the write-time header row.
func Header() []string {
	header := make([]string, 0, len(Fields))
	for _, f := range Fields {
		header = append(header, f.Column)
	}
	return header
}
