// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"context"

	"github.com/go-kit/kit/endpoint"
	"github.com/hishamsaffarulla/pingra-monitoring-app-sub002/namespace"
	"github.com/hishamsaffarulla/pingra-monitoring-app-sub002/pkg/apiutil"
	"github.com/hishamsaffarulla/pingra-monitoring-app-sub002/pkg/errors"
)

func setEndpoint(svc namespace.Service) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		req := request.(setReq)
		if err := req.validate(); err != nil {
			return nil, errors.Wrap(apiutil.ErrValidation, err)
		}

		value, err := decodeValue(*req.Value, req.Encoding)
		if err != nil {
			return nil, errors.Wrap(apiutil.ErrValidation, err)
		}

		if err := svc.Set(ctx, req.category, req.id, value); err != nil {
			return nil, err
		}

		key, err := namespace.Build(req.category, req.id)
		if err != nil {
			return nil, err
		}

		return setRes{
			Key: key.String(),
			TTL: policySeconds(req.category),
		}, nil
	}
}

func getEndpoint(svc namespace.Service) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		req := request.(keyReq)
		if err := req.validate(); err != nil {
			return nil, errors.Wrap(apiutil.ErrValidation, err)
		}

		value, err := svc.Get(ctx, req.category, req.id)
		if err != nil {
			return nil, err
		}

		ttl, err := svc.TTL(ctx, req.category, req.id)
		if err != nil {
			return nil, err
		}

		key, err := namespace.Build(req.category, req.id)
		if err != nil {
			return nil, err
		}

		encoded, encoding := encodeValue(value)

		return getRes{
			Key:      key.String(),
			Value:    encoded,
			Encoding: encoding,
			TTL:      seconds(ttl),
		}, nil
	}
}

func deleteEndpoint(svc namespace.Service) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		req := request.(keyReq)
		if err := req.validate(); err != nil {
			return nil, errors.Wrap(apiutil.ErrValidation, err)
		}

		if err := svc.Delete(ctx, req.category, req.id); err != nil {
			return nil, err
		}

		return deleteRes{}, nil
	}
}

func setTenantEndpoint(svc namespace.Service) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		req := request.(setTenantReq)
		if err := req.validate(); err != nil {
			return nil, errors.Wrap(apiutil.ErrValidation, err)
		}

		value, err := decodeValue(*req.Value, req.Encoding)
		if err != nil {
			return nil, errors.Wrap(apiutil.ErrValidation, err)
		}

		if err := svc.SetTenant(ctx, req.tenantID, req.id, value); err != nil {
			return nil, err
		}

		key, err := namespace.BuildTenant(req.tenantID, req.id)
		if err != nil {
			return nil, err
		}

		return setRes{
			Key: key.String(),
			TTL: policySeconds(namespace.Tenant),
		}, nil
	}
}

func getTenantEndpoint(svc namespace.Service) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		req := request.(tenantKeyReq)
		if err := req.validate(); err != nil {
			return nil, errors.Wrap(apiutil.ErrValidation, err)
		}

		value, err := svc.GetTenant(ctx, req.tenantID, req.id)
		if err != nil {
			return nil, err
		}

		ttl, err := svc.TTLTenant(ctx, req.tenantID, req.id)
		if err != nil {
			return nil, err
		}

		key, err := namespace.BuildTenant(req.tenantID, req.id)
		if err != nil {
			return nil, err
		}

		encoded, encoding := encodeValue(value)

		return getRes{
			Key:      key.String(),
			Value:    encoded,
			Encoding: encoding,
			TTL:      seconds(ttl),
		}, nil
	}
}

func deleteTenantEndpoint(svc namespace.Service) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		req := request.(tenantKeyReq)
		if err := req.validate(); err != nil {
			return nil, errors.Wrap(apiutil.ErrValidation, err)
		}

		if err := svc.DeleteTenant(ctx, req.tenantID, req.id); err != nil {
			return nil, err
		}

		return deleteRes{}, nil
	}
}
