// File: fake/doc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Fake ring implementation for testing api.Ring consumers.
package fake
