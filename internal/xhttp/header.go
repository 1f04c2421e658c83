package xhttp

import "net/http"

const (
	ContentType = "Content-Type"
	Accept      = "Accept"
	UserAgent   = "User-Agent"

	// XVestaboardReadWriteKey carries the display credential.
	XVestaboardReadWriteKey = "X-Vestaboard-Read-Write-Key"
)

const applicationJSON = "application/json"

func SetRequestHeaderJSON(req *http.Request) {
	req.Header.Set(ContentType, applicationJSON)
	req.Header.Set(Accept, applicationJSON)
}

func SetRequestHeaderReadWriteKey(req *http.Request, key string) {
	req.Header.Set(XVestaboardReadWriteKey, key)
}
