// Package handler provides HTTP request handlers for the Tipstream API.
//
// Each handler struct encapsulates the service it fronts and translates
// between HTTP and the service layer. All endpoints answer with the
// response envelope from the model package:
//
//   - WriteSuccess: success envelope with optional data
//   - WriteFail: fail envelope for client-caused failures
//   - WriteServiceError: maps service errors to status codes and
//     envelopes in one place
//
// Protected handlers rely on the auth middleware having placed the
// caller's user ID in the request context; it is read back via
// middleware.GetUserID.
package handler
