// Package docs đăng ký swagger spec cho /swagger endpoint.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/api/regist_user_info": {
            "post": {
                "produces": ["application/json"],
                "summary": "Đăng ký hoặc cập nhật thông tin user",
                "responses": {
                    "200": {"description": "Updated"},
                    "201": {"description": "Created"},
                    "400": {"description": "Bad Request"}
                }
            }
        },
        "/api/check-license": {
            "get": {
                "produces": ["application/json"],
                "summary": "Tra cứu license number theo email",
                "parameters": [{"type": "string", "name": "email", "in": "query", "required": true}],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}
            }
        },
        "/api/check-userinfo": {
            "get": {
                "produces": ["application/json"],
                "summary": "Tra cứu profile theo email",
                "parameters": [{"type": "string", "name": "email", "in": "query", "required": true}],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}
            }
        },
        "/api/update-chat": {
            "put": {
                "produces": ["application/json"],
                "summary": "Gom một đợt chat + token count vào record theo (email, ngày)",
                "responses": {
                    "200": {"description": "Merged"},
                    "201": {"description": "Created"},
                    "400": {"description": "Bad Request"},
                    "500": {"description": "Internal Server Error"}
                }
            }
        },
        "/api/chat-history": {
            "get": {
                "produces": ["application/json"],
                "summary": "Toàn bộ record chat của một user, mới nhất trước",
                "parameters": [{"type": "string", "name": "email", "in": "query", "required": true}],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Bad Request"},
                    "404": {"description": "Not Found"}
                }
            }
        },
        "/api/get-chat-histories": {
            "get": {
                "produces": ["application/json"],
                "summary": "Báo cáo chat phân trang theo window ngày",
                "parameters": [
                    {"type": "integer", "name": "page", "in": "query"},
                    {"type": "integer", "name": "pageSize", "in": "query"},
                    {"type": "string", "name": "email", "in": "query"},
                    {"type": "string", "name": "startDate", "in": "query"},
                    {"type": "string", "name": "endDate", "in": "query"},
                    {"type": "boolean", "name": "excludeAdminData", "in": "query"},
                    {"type": "string", "name": "adminEmails", "in": "query"}
                ],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}
            }
        },
        "/api/get-chat-list/{id}": {
            "get": {
                "produces": ["application/json"],
                "summary": "Danh sách message của một record",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Bad Request"},
                    "404": {"description": "Not Found"}
                }
            }
        }
    }
}`

var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "chatkeep API",
	Description:      "Record-keeping backend cho user license và chat token usage",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
