// Package bitstamp implements the core.Protocol interface for the Bitstamp v1 REST API.
//
// The package includes:
//   - Protocol: endpoint registry lookup, request building, signing and response parsing
//   - the endpoint registry: one row per operation with its path, method, privacy and coercion
//   - Decode helpers: conversion of normalized responses into core types
//
// Example usage:
//
//	p := bitstamp.NewProtocol()
//	req, err := p.BuildRequest(core.OpTicker, nil)
package bitstamp
