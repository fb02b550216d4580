package main

import (
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
)

const appID = "laundry"

type config struct {
	ServeRESTAddress string `envconfig:"serve_rest_address" default:":8000"`

	FirebaseProjectID       string `envconfig:"firebase_project_id" required:"true"`
	FirebaseCredentialsFile string `envconfig:"firebase_credentials_file"`
	FirebaseWebAPIKey       string `envconfig:"firebase_web_api_key" required:"true"`

	AMQPAddress  string `envconfig:"amqp_address"`
	AMQPExchange string `envconfig:"amqp_exchange" default:"laundry.events"`
}

func parseConfig() (*config, error) {
	c := new(config)
	if err := envconfig.Process(appID, c); err != nil {
		return nil, errors.Wrap(err, "failed to parse config")
	}
	return c, nil
}
