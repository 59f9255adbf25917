package twin

// Entities owned by a twin. Field names follow the canonical camelCase
// the backend documents; actual responses may arrive in other casings
// and are decoded through the tolerant pickers in decode.go. The mixed
// Spanish/English field names are part of the wire contract.

// Skill levels.
const (
	LevelPrincipiante = "Principiante"
	LevelIntermedio   = "Intermedio"
	LevelAvanzado     = "Avanzado"
	LevelExperto      = "Experto"
)

// Book reading states.
const (
	BookPorLeer    = "Por leer"
	BookLeyendo    = "Leyendo"
	BookTerminado  = "Terminado"
	BookAbandonado = "Abandonado"
)

// Book formats.
const (
	FormatoFisico     = "Físico"
	FormatoDigital    = "Digital"
	FormatoAudiolibro = "Audiolibro"
)

// Job opportunity states.
const (
	OppAplicado   = "aplicado"
	OppEntrevista = "entrevista"
	OppEsperando  = "esperando"
	OppRechazado  = "rechazado"
	OppAceptado   = "aceptado"
	OppInteresado = "interesado"
)

// Activity workflow states.
const (
	ActividadPlanificada = "planificada"
	ActividadConfirmada  = "confirmada"
	ActividadEnCurso     = "en_curso"
	ActividadCompletada  = "completada"
	ActividadCancelada   = "cancelada"
)

// Skill represents one skill owned by a twin, including its nested
// learning collection. Raw holds the document exactly as last fetched
// so whole-entity rewrites preserve fields this client does not model.
type Skill struct {
	ID              string     `json:"id"`
	Name            string     `json:"name" validate:"required"`
	Category        string     `json:"category"`
	Level           string     `json:"level" validate:"omitempty,oneof=Principiante Intermedio Avanzado Experto"`
	Description     string     `json:"description"`
	ExperienceYears int        `json:"experienceYears"`
	Certifications  []string   `json:"certifications"`
	Projects        []string   `json:"projects"`
	LearningPath    []string   `json:"learningPath"`
	AISuggestions   []string   `json:"aiSuggestions"`
	Tags            []string   `json:"tags"`
	DateAdded       string     `json:"dateAdded"`
	LastUpdated     string     `json:"lastUpdated"`
	Validated       bool       `json:"validated"`
	WhatLearned     []Learning `json:"whatLearned"`

	Raw []byte `json:"-"`
}

// Learning is one entry in a skill's whatLearned collection. Its id is
// unique within the parent skill only, never globally.
type Learning struct {
	ID            string `json:"id"`
	Name          string `json:"name" validate:"required"`
	Description   string `json:"description,omitempty"`
	Content       string `json:"content"`
	DateCreated   string `json:"dateCreated"`
	DateUpdated   string `json:"dateUpdated"`
	SearchResults string `json:"searchResults,omitempty"`
}

// Book is a book in the twin's library.
type Book struct {
	ID           string   `json:"id"`
	Titulo       string   `json:"titulo" validate:"required"`
	Autor        string   `json:"autor"`
	ISBN         string   `json:"isbn"`
	FechaInicio  string   `json:"fechaInicio"`
	FechaFin     string   `json:"fechaFin"`
	Genero       string   `json:"genero"`
	Paginas      int      `json:"paginas" validate:"gte=0"`
	Editorial    string   `json:"editorial"`
	Idioma       string   `json:"idioma"`
	Formato      string   `json:"formato" validate:"omitempty,oneof=Físico Digital Audiolibro"`
	Estado       string   `json:"estado" validate:"omitempty,oneof='Por leer' Leyendo Terminado Abandonado"`
	Calificacion float64  `json:"calificacion" validate:"gte=0,lte=5"`
	Opiniones    string   `json:"opiniones"`
	Tags         []string `json:"tags"`
}

// Opportunity is a job-application tracking record.
type Opportunity struct {
	ID              string `json:"id"`
	Empresa         string `json:"empresa" validate:"required"`
	Puesto          string `json:"puesto" validate:"required"`
	Descripcion     string `json:"descripcion"`
	Salario         string `json:"salario"`
	Ubicacion       string `json:"ubicacion"`
	FechaAplicacion string `json:"fechaAplicacion"`
	Estado          string `json:"estado" validate:"omitempty,oneof=aplicado entrevista esperando rechazado aceptado interesado"`
	URL             string `json:"url"`
	ContactoNombre  string `json:"contactoNombre"`
	ContactoEmail   string `json:"contactoEmail" validate:"omitempty,email"`
	Notas           string `json:"notas"`
}

// Activity is a scheduled activity nested under a travel itinerary.
type Activity struct {
	ID            string  `json:"id"`
	Fecha         string  `json:"fecha"`
	HoraInicio    string  `json:"horaInicio"`
	HoraFin       string  `json:"horaFin,omitempty"`
	Titulo        string  `json:"titulo" validate:"required"`
	Descripcion   string  `json:"descripcion"`
	Tipo          string  `json:"tipo" validate:"omitempty,oneof=transporte alojamiento comida turismo cultura compras entretenimiento negocio otro"`
	Prioridad     string  `json:"prioridad" validate:"omitempty,oneof=baja media alta urgente"`
	Estado        string  `json:"estado" validate:"omitempty,oneof=planificada confirmada en_curso completada cancelada"`
	Ubicacion     string  `json:"ubicacion"`
	CostoEstimado float64 `json:"costoEstimado" validate:"gte=0"`
	Moneda        string  `json:"moneda"`
	Notas         string  `json:"notas"`
}

// DiaryEntry is one diary entry, optionally with attached photo paths.
type DiaryEntry struct {
	ID          string   `json:"id"`
	Fecha       string   `json:"fecha"`
	Titulo      string   `json:"titulo" validate:"required"`
	Contenido   string   `json:"contenido"`
	EstadoAnimo string   `json:"estadoAnimo"`
	Ubicacion   string   `json:"ubicacion"`
	Tags        []string `json:"tags"`
	Photos      []string `json:"photos"`
}

// Resume is a stored résumé document.
type Resume struct {
	ID            string   `json:"id"`
	Nombre        string   `json:"nombre"`
	Resumen       string   `json:"resumen"`
	Experiencia   []string `json:"experiencia"`
	Educacion     []string `json:"educacion"`
	Habilidades   []string `json:"habilidades"`
	Idiomas       []string `json:"idiomas"`
	FechaCreacion string   `json:"fechaCreacion"`
}

// Home is a house owned or inhabited by the twin.
type Home struct {
	ID          string `json:"id"`
	Nombre      string `json:"nombre"`
	Direccion   string `json:"direccion"`
	Ciudad      string `json:"ciudad"`
	Pais        string `json:"pais"`
	Tipo        string `json:"tipo"`
	Principal   bool   `json:"principal"`
	FechaCompra string `json:"fechaCompra"`
}
