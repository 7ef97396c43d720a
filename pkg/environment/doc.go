// Package environment names the deployment environments a binary can run in
// and normalises the values read from configuration.
//
//	env := environment.Parse(os.Getenv("APP_ENV"))
//	if env.IsProduction() {
//	    // JSON logs, info level
//	}
package environment
