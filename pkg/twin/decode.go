package twin

import (
	"github.com/tidwall/gjson"

	"github.com/twinops/twinctl/pkg/envelope"
)

// Decoders for backend documents. The backend serializes the same
// entity with different casing depending on the endpoint, so every
// field read tries the camelCase and PascalCase variants through the
// envelope pickers instead of trusting struct tags.

// DecodeSkill decodes a skill document, keeping the raw bytes for later
// whole-entity rewrites.
func DecodeSkill(raw []byte) (skill Skill) {
	doc := gjson.ParseBytes(raw)

	skill = Skill{
		ID:              envelope.Str(doc, "id", "Id", "ID"),
		Name:            envelope.Str(doc, "name", "Name"),
		Category:        envelope.Str(doc, "category", "Category"),
		Level:           envelope.Str(doc, "level", "Level"),
		Description:     envelope.Str(doc, "description", "Description"),
		ExperienceYears: envelope.Int(doc, "experienceYears", "ExperienceYears"),
		Certifications:  envelope.Strings(doc, "certifications", "Certifications"),
		Projects:        envelope.Strings(doc, "projects", "Projects"),
		LearningPath:    envelope.Strings(doc, "learningPath", "LearningPath"),
		AISuggestions:   envelope.Strings(doc, "aiSuggestions", "AiSuggestions", "AISuggestions"),
		Tags:            envelope.Strings(doc, "tags", "Tags"),
		DateAdded:       envelope.Str(doc, "dateAdded", "DateAdded"),
		LastUpdated:     envelope.Str(doc, "lastUpdated", "LastUpdated"),
		Validated:       envelope.Bool(doc, "validated", "Validated"),
		Raw:             raw,
	}

	learned := envelope.Pick(doc, "whatLearned", "WhatLearned")
	if learned.IsArray() {
		for _, item := range learned.Array() {
			skill.WhatLearned = append(skill.WhatLearned, decodeLearning(item))
		}
	}

	return skill
}

func decodeLearning(doc gjson.Result) (learning Learning) {
	learning = Learning{
		ID:            envelope.Str(doc, "id", "Id", "ID"),
		Name:          envelope.Str(doc, "name", "Name"),
		Description:   envelope.Str(doc, "description", "Description"),
		Content:       envelope.Str(doc, "content", "Content"),
		DateCreated:   envelope.Str(doc, "dateCreated", "DateCreated"),
		DateUpdated:   envelope.Str(doc, "dateUpdated", "DateUpdated"),
		SearchResults: envelope.Str(doc, "searchResults", "SearchResults"),
	}
	return learning
}

// DecodeSkills decodes a list payload into skills.
func DecodeSkills(raw []byte) (skills []Skill) {
	for _, item := range gjson.ParseBytes(raw).Array() {
		skills = append(skills, DecodeSkill([]byte(item.Raw)))
	}
	return skills
}

// DecodeBook decodes a book document.
func DecodeBook(raw []byte) (book Book) {
	doc := gjson.ParseBytes(raw)

	book = Book{
		ID:           envelope.Str(doc, "id", "Id", "ID"),
		Titulo:       envelope.Str(doc, "titulo", "Titulo"),
		Autor:        envelope.Str(doc, "autor", "Autor"),
		ISBN:         envelope.Str(doc, "isbn", "Isbn", "ISBN"),
		FechaInicio:  envelope.Str(doc, "fechaInicio", "FechaInicio"),
		FechaFin:     envelope.Str(doc, "fechaFin", "FechaFin"),
		Genero:       envelope.Str(doc, "genero", "Genero"),
		Paginas:      envelope.Int(doc, "paginas", "Paginas"),
		Editorial:    envelope.Str(doc, "editorial", "Editorial"),
		Idioma:       envelope.Str(doc, "idioma", "Idioma"),
		Formato:      envelope.Str(doc, "formato", "Formato"),
		Estado:       envelope.Str(doc, "estado", "Estado"),
		Calificacion: envelope.Float(doc, "calificacion", "Calificacion"),
		Opiniones:    envelope.Str(doc, "opiniones", "Opiniones"),
		Tags:         envelope.Strings(doc, "tags", "Tags"),
	}
	return book
}

// DecodeBooks decodes a list payload into books.
func DecodeBooks(raw []byte) (books []Book) {
	for _, item := range gjson.ParseBytes(raw).Array() {
		books = append(books, DecodeBook([]byte(item.Raw)))
	}
	return books
}

// DecodeOpportunity decodes a job opportunity document.
func DecodeOpportunity(raw []byte) (opp Opportunity) {
	doc := gjson.ParseBytes(raw)

	opp = Opportunity{
		ID:              envelope.Str(doc, "id", "Id", "ID"),
		Empresa:         envelope.Str(doc, "empresa", "Empresa"),
		Puesto:          envelope.Str(doc, "puesto", "Puesto"),
		Descripcion:     envelope.Str(doc, "descripcion", "Descripcion"),
		Salario:         envelope.Str(doc, "salario", "Salario"),
		Ubicacion:       envelope.Str(doc, "ubicacion", "Ubicacion"),
		FechaAplicacion: envelope.Str(doc, "fechaAplicacion", "FechaAplicacion"),
		Estado:          envelope.Str(doc, "estado", "Estado"),
		URL:             envelope.Str(doc, "url", "Url", "URL"),
		ContactoNombre:  envelope.Str(doc, "contactoNombre", "ContactoNombre"),
		ContactoEmail:   envelope.Str(doc, "contactoEmail", "ContactoEmail"),
		Notas:           envelope.Str(doc, "notas", "Notas"),
	}
	return opp
}

// DecodeOpportunities decodes a list payload into opportunities.
func DecodeOpportunities(raw []byte) (opps []Opportunity) {
	for _, item := range gjson.ParseBytes(raw).Array() {
		opps = append(opps, DecodeOpportunity([]byte(item.Raw)))
	}
	return opps
}

// DecodeActivity decodes an itinerary activity document.
func DecodeActivity(raw []byte) (activity Activity) {
	doc := gjson.ParseBytes(raw)

	activity = Activity{
		ID:            envelope.Str(doc, "id", "Id", "ID"),
		Fecha:         envelope.Str(doc, "fecha", "Fecha"),
		HoraInicio:    envelope.Str(doc, "horaInicio", "HoraInicio"),
		HoraFin:       envelope.Str(doc, "horaFin", "HoraFin"),
		Titulo:        envelope.Str(doc, "titulo", "Titulo"),
		Descripcion:   envelope.Str(doc, "descripcion", "Descripcion"),
		Tipo:          envelope.Str(doc, "tipo", "Tipo"),
		Prioridad:     envelope.Str(doc, "prioridad", "Prioridad"),
		Estado:        envelope.Str(doc, "estado", "Estado"),
		Ubicacion:     envelope.Str(doc, "ubicacion", "Ubicacion"),
		CostoEstimado: envelope.Float(doc, "costoEstimado", "CostoEstimado"),
		Moneda:        envelope.Str(doc, "moneda", "Moneda"),
		Notas:         envelope.Str(doc, "notas", "Notas"),
	}
	return activity
}

// DecodeActivities decodes a list payload into activities.
func DecodeActivities(raw []byte) (activities []Activity) {
	for _, item := range gjson.ParseBytes(raw).Array() {
		activities = append(activities, DecodeActivity([]byte(item.Raw)))
	}
	return activities
}

// DecodeDiaryEntry decodes a diary entry document.
func DecodeDiaryEntry(raw []byte) (entry DiaryEntry) {
	doc := gjson.ParseBytes(raw)

	entry = DiaryEntry{
		ID:          envelope.Str(doc, "id", "Id", "ID"),
		Fecha:       envelope.Str(doc, "fecha", "Fecha"),
		Titulo:      envelope.Str(doc, "titulo", "Titulo"),
		Contenido:   envelope.Str(doc, "contenido", "Contenido"),
		EstadoAnimo: envelope.Str(doc, "estadoAnimo", "EstadoAnimo"),
		Ubicacion:   envelope.Str(doc, "ubicacion", "Ubicacion"),
		Tags:        envelope.Strings(doc, "tags", "Tags"),
		Photos:      envelope.Strings(doc, "photos", "Photos"),
	}
	return entry
}

// DecodeDiaryEntries decodes a list payload into diary entries.
func DecodeDiaryEntries(raw []byte) (entries []DiaryEntry) {
	for _, item := range gjson.ParseBytes(raw).Array() {
		entries = append(entries, DecodeDiaryEntry([]byte(item.Raw)))
	}
	return entries
}

// DecodeResume decodes a résumé document.
func DecodeResume(raw []byte) (resume Resume) {
	doc := gjson.ParseBytes(raw)

	resume = Resume{
		ID:            envelope.Str(doc, "id", "Id", "ID"),
		Nombre:        envelope.Str(doc, "nombre", "Nombre"),
		Resumen:       envelope.Str(doc, "resumen", "Resumen"),
		Experiencia:   envelope.Strings(doc, "experiencia", "Experiencia"),
		Educacion:     envelope.Strings(doc, "educacion", "Educacion"),
		Habilidades:   envelope.Strings(doc, "habilidades", "Habilidades"),
		Idiomas:       envelope.Strings(doc, "idiomas", "Idiomas"),
		FechaCreacion: envelope.Str(doc, "fechaCreacion", "FechaCreacion"),
	}
	return resume
}

// DecodeResumes decodes a list payload into résumés.
func DecodeResumes(raw []byte) (resumes []Resume) {
	for _, item := range gjson.ParseBytes(raw).Array() {
		resumes = append(resumes, DecodeResume([]byte(item.Raw)))
	}
	return resumes
}

// DecodeHome decodes a home document.
func DecodeHome(raw []byte) (home Home) {
	doc := gjson.ParseBytes(raw)

	home = Home{
		ID:          envelope.Str(doc, "id", "Id", "ID"),
		Nombre:      envelope.Str(doc, "nombre", "Nombre"),
		Direccion:   envelope.Str(doc, "direccion", "Direccion"),
		Ciudad:      envelope.Str(doc, "ciudad", "Ciudad"),
		Pais:        envelope.Str(doc, "pais", "Pais"),
		Tipo:        envelope.Str(doc, "tipo", "Tipo"),
		Principal:   envelope.Bool(doc, "principal", "Principal"),
		FechaCompra: envelope.Str(doc, "fechaCompra", "FechaCompra"),
	}
	return home
}

// DecodeHomes decodes a list payload into homes.
func DecodeHomes(raw []byte) (homes []Home) {
	for _, item := range gjson.ParseBytes(raw).Array() {
		homes = append(homes, DecodeHome([]byte(item.Raw)))
	}
	return homes
}
