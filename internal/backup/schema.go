package backup

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

const (
	stateSchemaURL    = "schema://rivalgoals/state.json"
	envelopeSchemaURL = "schema://rivalgoals/backup.json"
)

// stateSchema describes the persisted blob. It only constrains fields whose
// wrong shape the migrator would otherwise silently discard.
const stateSchema = `{
  "type": "object",
  "properties": {
    "theme": {"enum": ["light", "dark"]},
    "tasks": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["id", "title", "status"],
        "properties": {
          "id": {"type": "string", "minLength": 1},
          "title": {"type": "string"},
          "status": {"enum": ["To Do", "In Progress", "Done"]},
          "createdAt": {"type": "string"},
          "xp": {"type": "integer", "minimum": 0}
        }
      }
    },
    "savedNotes": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["id"],
        "properties": {
          "id": {"type": "string", "minLength": 1},
          "title": {"type": "string"},
          "content": {"type": "string"}
        }
      }
    },
    "dailyHistory": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["date"],
        "properties": {
          "date": {"type": "string", "pattern": "^[0-9]{4}-[0-9]{2}-[0-9]{2}$"},
          "userXP": {"type": "integer", "minimum": 0},
          "rivaXP": {"type": "integer", "minimum": 0}
        }
      }
    },
    "userSettings": {
      "type": "object",
      "properties": {
        "userName": {"type": "string", "maxLength": 40},
        "pomodoroWorkDuration": {"type": "integer", "minimum": 1, "maximum": 180},
        "pomodoroBreakDuration": {"type": "integer", "minimum": 1, "maximum": 180}
      }
    },
    "currentUserXP": {"type": "integer", "minimum": 0},
    "currentRivaXP": {"type": "integer", "minimum": 0},
    "rivaTargetToday": {"type": "integer", "minimum": 0},
    "currentStreak": {"type": "integer", "minimum": 0},
    "lastLoginDate": {"type": "string", "pattern": "^[0-9]{4}-[0-9]{2}-[0-9]{2}$"}
  }
}`

const envelopeSchema = `{
  "type": "object",
  "required": ["format", "version", "state"],
  "properties": {
    "format": {"const": "rivalgoals-backup"},
    "version": {"const": 1},
    "exportedAt": {"type": "string"},
    "state": {"$ref": "state.json"}
  }
}`

var (
	compileOnce sync.Once
	compiled    struct {
		state, envelope *jsonschema.Schema
	}
	compileErr error
)

func schemas() (state, envelope *jsonschema.Schema, err error) {
	compileOnce.Do(func() {
		c := jsonschema.NewCompiler()
		for url, doc := range map[string]string{
			stateSchemaURL:    stateSchema,
			envelopeSchemaURL: envelopeSchema,
		} {
			var parsed any
			if err := json.Unmarshal([]byte(doc), &parsed); err != nil {
				compileErr = fmt.Errorf("parse schema %s: %w", url, err)
				return
			}
			if err := c.AddResource(url, parsed); err != nil {
				compileErr = fmt.Errorf("add resource: %w", err)
				return
			}
		}
		if compiled.state, compileErr = c.Compile(stateSchemaURL); compileErr != nil {
			return
		}
		compiled.envelope, compileErr = c.Compile(envelopeSchemaURL)
	})
	return compiled.state, compiled.envelope, compileErr
}
