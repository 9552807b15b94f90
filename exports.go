package gorosidl

import "github.com/golangros/gorosidl/ifc"

// Type aliases for public API - all model types come from the ifc subpackage.

// Package is the aggregated model for one ROS package.
type Package = ifc.Package

// Message is a single flat named field set.
type Message = ifc.Message

// Service is a two-section (request/response) specification.
type Service = ifc.Service

// Action is a three-section (goal/result/feedback) specification.
type Action = ifc.Action

// FieldSet is an insertion-ordered field name to type mapping.
type FieldSet = ifc.FieldSet

// Field is a single named field of one section.
type Field = ifc.Field

// Type is a resolved field type descriptor.
type Type = ifc.Type

// TypeKind distinguishes primitive from cross-referenced types.
type TypeKind = ifc.TypeKind

// Type kinds.
const (
	Primitive = ifc.Primitive
	Reference = ifc.Reference
)
