package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] in the layout accepted by
// the optional JSON config file.
type StructuredJSONConfig struct {
	Bot struct {
		Token     string   `json:"token"`
		QueueSize int      `json:"queue_size"`
		Debug     bool     `json:"debug"`
		PromptTTL Duration `json:"prompt_ttl"`
	} `json:"bot,omitempty"`

	App struct {
		CipherSecret string `json:"cipher_secret"`
		LogLevel     string `json:"log_level"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Provider struct {
		BaseURL        string   `json:"base_url"`
		RequestTimeout Duration `json:"request_timeout"`
		AuthMode       string   `json:"auth_mode"`
		AuthHeader     string   `json:"auth_header"`
		AuthScheme     string   `json:"auth_scheme"`
		AuthField      string   `json:"auth_field"`
		CodeField      string   `json:"code_field"`
		MessageField   string   `json:"message_field"`
		SuccessCodes   []string `json:"success_codes"`
		OperationsFile string   `json:"operations_file"`
	} `json:"provider,omitempty"`

	Server struct {
		HTTPAddress string `json:"http_address"`
	} `json:"server,omitempty"`
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
		Bot: Bot{
			Token:     jsonCfg.Bot.Token,
			QueueSize: jsonCfg.Bot.QueueSize,
			Debug:     jsonCfg.Bot.Debug,
			PromptTTL: time.Duration(jsonCfg.Bot.PromptTTL),
		},
		App: App{
			CipherSecret: jsonCfg.App.CipherSecret,
			LogLevel:     jsonCfg.App.LogLevel,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
		},
		Provider: Provider{
			BaseURL:        jsonCfg.Provider.BaseURL,
			RequestTimeout: time.Duration(jsonCfg.Provider.RequestTimeout),
			AuthMode:       jsonCfg.Provider.AuthMode,
			AuthHeader:     jsonCfg.Provider.AuthHeader,
			AuthScheme:     jsonCfg.Provider.AuthScheme,
			AuthField:      jsonCfg.Provider.AuthField,
			CodeField:      jsonCfg.Provider.CodeField,
			MessageField:   jsonCfg.Provider.MessageField,
			SuccessCodes:   jsonCfg.Provider.SuccessCodes,
			OperationsFile: jsonCfg.Provider.OperationsFile,
		},
		Server: Server{
			HTTPAddress: jsonCfg.Server.HTTPAddress,
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
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
