// Package main Payments API
//
//	@title						Payments API
//	@version					1.0
//	@description				REST API for managing payments and payment methods
//
//	@contact.name				Payments Team
//
//	@license.name				Proprietary
//
//	@host						localhost:8080
//	@BasePath					/api/v1
//
//	@tag.name					Payment
//	@tag.description			Payment CRUD operations
//
//	@tag.name					PaymentMethod
//	@tag.description			Payment method CRUD and default selection
package main
