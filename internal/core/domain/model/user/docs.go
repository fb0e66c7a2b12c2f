// Package user provides the User account and its role.
package user
