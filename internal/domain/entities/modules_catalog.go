package entities

// Contractible module identifiers. NOMINA and PRENOMINA are mutually exclusive.
const (
	ModuleNomina          = "NOMINA"
	ModulePrenomina       = "PRENOMINA"
	ModuleAsistencia      = "CONTROL_ASISTENCIA"
	ModuleExpediente      = "EXPEDIENTE_DIGITAL"
	ModuleVacaciones      = "VACACIONES_PERMISOS"
	ModuleEvaluacion      = "EVALUACION_DESEMPENO"
	ModuleComunicacion    = "COMUNICACION_INTERNA"
	ProductReloj          = "RELOJ_CHECADOR"
	ProductLectorHuella   = "LECTOR_HUELLA"
	ProductTerminalFacial = "TERMINAL_FACIAL"
	ProductInstalacion    = "INSTALACION_SITIO"
)

// InitialModules returns the fixed set of modules every quote carries, all inactive.
func InitialModules() []ModuleDetail {
	return []ModuleDetail{
		{ModuleID: ModuleNomina, Name: "Nómina"},
		{ModuleID: ModulePrenomina, Name: "Prenómina"},
		{ModuleID: ModuleAsistencia, Name: "Control de asistencia"},
		{ModuleID: ModuleExpediente, Name: "Expediente digital"},
		{ModuleID: ModuleVacaciones, Name: "Vacaciones y permisos"},
		{ModuleID: ModuleEvaluacion, Name: "Evaluación de desempeño"},
		{ModuleID: ModuleComunicacion, Name: "Comunicación interna"},
	}
}

// InitialProducts returns the fixed hardware catalog with quantity 0.
func InitialProducts() []ProductDetail {
	return []ProductDetail{
		{ProductID: ProductReloj, Name: "Reloj checador biométrico", Price: 4500},
		{ProductID: ProductLectorHuella, Name: "Lector de huella USB", Price: 1800},
		{ProductID: ProductTerminalFacial, Name: "Terminal de reconocimiento facial", Price: 8900},
		{ProductID: ProductInstalacion, Name: "Instalación en sitio", Price: 1500},
	}
}
