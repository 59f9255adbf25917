package twin

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

//nolint:gochecknoglobals // Single validator instance, safe for concurrent use
var validate = validator.New()

// ApplyDefaults fills the client-side defaults for a new book: a
// generated id, "Por leer" state, and zero rating. Ids are UUIDs so two
// clients creating entities concurrently cannot collide.
func (b *Book) ApplyDefaults() {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	if b.Estado == "" {
		b.Estado = BookPorLeer
	}
	if b.Calificacion < 0 {
		b.Calificacion = 0
	}
}

// Validate checks the book against the enum and range constraints the
// backend expects.
func (b *Book) Validate() (err error) {
	err = validate.Struct(b)
	if err != nil {
		err = errors.Wrap(err, "invalid book")
		return err
	}
	return err
}

// ApplyDefaults fills defaults for a new opportunity.
func (o *Opportunity) ApplyDefaults() {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	if o.Estado == "" {
		o.Estado = OppInteresado
	}
	if o.FechaAplicacion == "" {
		o.FechaAplicacion = time.Now().Format("2006-01-02")
	}
}

// Validate checks the opportunity.
func (o *Opportunity) Validate() (err error) {
	err = validate.Struct(o)
	if err != nil {
		err = errors.Wrap(err, "invalid opportunity")
		return err
	}
	return err
}

// ApplyDefaults fills defaults for a new activity.
func (a *Activity) ApplyDefaults() {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	if a.Estado == "" {
		a.Estado = ActividadPlanificada
	}
	if a.Prioridad == "" {
		a.Prioridad = "media"
	}
}

// Validate checks the activity.
func (a *Activity) Validate() (err error) {
	err = validate.Struct(a)
	if err != nil {
		err = errors.Wrap(err, "invalid activity")
		return err
	}
	return err
}

// ApplyDefaults fills defaults for a new diary entry.
func (d *DiaryEntry) ApplyDefaults() {
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	if d.Fecha == "" {
		d.Fecha = time.Now().Format("2006-01-02")
	}
}

// Validate checks the diary entry.
func (d *DiaryEntry) Validate() (err error) {
	err = validate.Struct(d)
	if err != nil {
		err = errors.Wrap(err, "invalid diary entry")
		return err
	}
	return err
}

// ApplyDefaults fills defaults for a new skill.
func (s *Skill) ApplyDefaults() {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	if s.Level == "" {
		s.Level = LevelPrincipiante
	}
	if s.DateAdded == "" {
		s.DateAdded = time.Now().Format("2006-01-02")
	}
}

// Validate checks the skill.
func (s *Skill) Validate() (err error) {
	err = validate.Struct(s)
	if err != nil {
		err = errors.Wrap(err, "invalid skill")
		return err
	}
	return err
}

// Validate checks the learning.
func (l *Learning) Validate() (err error) {
	err = validate.Struct(l)
	if err != nil {
		err = errors.Wrap(err, "invalid learning")
		return err
	}
	return err
}
