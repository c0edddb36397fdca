package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON tags and
// string-friendly durations, so that an operator can keep the full
// configuration in a single file.
type StructuredJSONConfig struct {
	App struct {
		TokenSignKey  string   `json:"token_sign_key"`
		TokenIssuer   string   `json:"token_issuer"`
		TokenDuration Duration `json:"token_duration"`
		BcryptCost    int      `json:"bcrypt_cost"`
		Domain        string   `json:"domain"`
		Version       string   `json:"version"`
	} `json:"app,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	ObjectStore struct {
		Endpoint       string   `json:"endpoint"`
		Region         string   `json:"region"`
		Bucket         string   `json:"bucket"`
		AccessKey      string   `json:"access_key"`
		SecretKey      string   `json:"secret_key"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"object_store,omitempty"`

	Mail struct {
		APIAddress     string   `json:"api_address"`
		FromLabel      string   `json:"from_label"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"mail,omitempty"`

	Workers struct {
		MailQueueSize int `json:"mail_queue_size"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			TokenSignKey:  jsonCfg.App.TokenSignKey,
			TokenIssuer:   jsonCfg.App.TokenIssuer,
			TokenDuration: time.Duration(jsonCfg.App.TokenDuration),
			BcryptCost:    jsonCfg.App.BcryptCost,
			Domain:        jsonCfg.App.Domain,
			Version:       jsonCfg.App.Version,
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
		},
		ObjectStore: ObjectStore{
			Endpoint:       jsonCfg.ObjectStore.Endpoint,
			Region:         jsonCfg.ObjectStore.Region,
			Bucket:         jsonCfg.ObjectStore.Bucket,
			AccessKey:      jsonCfg.ObjectStore.AccessKey,
			SecretKey:      jsonCfg.ObjectStore.SecretKey,
			RequestTimeout: time.Duration(jsonCfg.ObjectStore.RequestTimeout),
		},
		Mail: Mail{
			APIAddress:     jsonCfg.Mail.APIAddress,
			FromLabel:      jsonCfg.Mail.FromLabel,
			RequestTimeout: time.Duration(jsonCfg.Mail.RequestTimeout),
		},
		Workers: Workers{
			MailQueueSize: jsonCfg.Workers.MailQueueSize,
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s".
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
