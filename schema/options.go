package schema

// Closed vocabularies of the survey questions. An empty answer is never part
// of a vocabulary.
var (
	DistrictOptions = []string{"Tamarindo", "Cartagena", "Cabo Velas"}

	SexOptions = []string{"Hombre", "Mujer", "LGBTQ+", "Otro / Prefiero no decirlo"}

	EducationOptions = []string{
		"Ninguna", "Primaria", "Primaria incompleta", "Secundaria incompleta",
		"Secundaria completa", "Universitaria incompleta", "Universitaria", "Técnico",
	}

	BusinessTypeOptions = []string{
		"Supermercado", "Pulpería / Licorera", "Restaurante / Soda", "Bar",
		"Tienda de artículos", "Gasolineras", "Servicios estéticos", "Puesto de lotería", "Otro",
	}

	SafetyPerceptionOptions = []string{
		"Muy seguro(a)", "Seguro(a)", "Ni seguro(a) Ni inseguro(a)", "Inseguro(a)", "Muy inseguro(a)",
	}

	InsecurityFactorOptions = []string{
		"Presencia de personas desconocidas o comportamientos inusuales",
		"Poca iluminación en la zona",
		"Escasa presencia policial",
		"Robos frecuentes",
		"Consumo de sustancias en la vía pública",
		"Horarios considerados peligrosos (Entre las 6:00pm y las 5:00am)",
		"Disturbios o riñas cercanas",
		"Otro",
	}

	SocialFactorOptions = []string{
		"Falta de oportunidades laborales", "Problemas vecinales", "Asentamientos ilegales",
		"Personas en situación de calle", "Zona de prostitución", "Consumo de alcohol en vía pública",
		"Personas con exceso de tiempo de ocio", "Cuarterías", "Lotes baldíos",
		"Ventas informales", "Pérdida de espacios públicos", "Otro",
	}

	SocialInvestmentOptions = []string{
		"Falta de oferta educativa",
		"Falta de oferta deportiva",
		"Falta de oferta recreativa",
		"Falta de actividades culturales",
	}

	DrugUseOptions = []string{"Área privada", "Área pública"}

	BunkerOptions = []string{"Casa de habitación", "Edificación abandonada", "Lote baldío", "Otro"}

	ZoneCrimeOptions = []string{
		"Disturbios en vía pública",
		"Daños a la propiedad",
		"Intimidación o amenazas con fines de lucro",
		"Hurto",
		"Receptación",
		"Contrabando",
		"Otro",
	}

	DrugSaleOptions = []string{"Búnker (espacio cerrado)", "Vía pública", "Expres"}

	LifeCrimeOptions = []string{"Homicidios", "Heridos"}

	SexualCrimeOptions = []string{"Abuso sexual", "Acoso sexual", "Violación"}

	AssaultOptions = []string{
		"Asalto a personas", "Asalto a comercio", "Asalto a vivienda", "Asalto a transporte público",
	}

	FraudOptions = []string{
		"Billetes falsos", "Documentos falsos", "Estafa (oro)",
		"Lotería falsa", "Estafas informáticas",
		"Estafa telefónica", "Estafa con tarjetas",
	}

	TheftOptions = []string{
		"Tacha a comercio", "Tacha a edificaciones",
		"Tacha a vivienda", "Tacha de vehículos", "Robo de vehículos",
	}

	ControlObservationOptions = []string{
		ControlObserved,
		"He escuchado comentarios de otros comercios",
		"No",
		"Prefiero no responder",
	}

	ControlDescriptionOptions = []string{
		"Cobros o 'cuotas' por dejar operar",
		"Personas que vigilan entradas/salidas",
		"Amenazas veladas o directas",
		"Restricciones impuestas sobre horarios o actividades",
		"Intermediarios de 'seguridad' no oficiales",
		"Personas ajenas con control territorial visible",
		"Interferencia constante en operación",
		"Presencia de grupos como 'autorizadores'",
		"Otros",
	}

	VictimOptions = []string{
		VictimReported,
		VictimNotReported,
		"No",
		"Prefiero no responder",
	}

	NoReportReasonOptions = []string{
		"Distancia (falta de oficinas)",
		"Miedo a represalias",
		"Falta de respuesta oportuna",
		"Denuncias anteriores no funcionaron",
		"Complejidad al colocar la denuncia",
		"Desconocimiento de dónde denunciar",
		"Recomendación de no denunciar",
		"Falta de tiempo",
	}

	CrimeTypeOptions = []string{
		"Hurto", "Asalto", "Cobro por protección", "Estafa",
		"Daños a la propiedad", "Venta o consumo de drogas",
		"Amenazas", "Cobros periódicos o 'cuotas'", "Otro",
	}

	CrimeScheduleOptions = []string{
		"00:00 - 02:59 a.m.", "03:00 - 05:59 a.m.", "06:00 - 08:59 a.m.",
		"09:00 - 11:59 a.m.", "12:00 - 14:59 p.m.", "15:00 - 17:59 p.m.",
		"18:00 - 20:59 p.m.", "21:00 - 23:59 p.m.", "Desconocido",
	}

	OperatingModeOptions = []string{
		"Arma blanca", "Arma de fuego", "Amenazas",
		"Cobros por operación", "Arrebato", "Boquete",
		"Ganzúa", "Engaño", "No sé", "Otro",
	}

	QuotaOptions = []string{QuotaDemanded, "No", "Prefiero no responder"}

	PoliceRatingOptions = []string{"Excelente", "Bueno", "Regular", "Malo", "Muy malo"}

	ServiceChangeOptions = []string{
		"Ha mejorado mucho", "Ha mejorado", "Igual", "Ha empeorado", "Ha empeorado mucho",
	}

	PoliceAcquaintanceOptions = []string{"Sí", "No"}

	ProgramOptions = []string{
		"No lo conozco",
		ProgramKnownNotParticipating,
		"Lo conozco y participo activamente",
		ProgramWouldParticipate,
		"Prefiero no responder",
	}
)

// Answers that open conditional questions.
const (
	PerceptionUnsafe     = "Inseguro(a)"
	PerceptionVeryUnsafe = "Muy inseguro(a)"

	ControlObserved = "Sí, he observado comportamientos similares"

	VictimReported    = "Sí, y presenté la denuncia"
	VictimNotReported = "Sí, pero no presenté la denuncia"

	QuotaDemanded = "Sí"

	ProgramKnownNotParticipating = "Lo conozco, pero no participo"
	ProgramWouldParticipate      = "No lo conozco, pero me gustaría participar"
)
