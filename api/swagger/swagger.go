package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Academy API",
        "description": "Academic records: users, courses, semesters, disciplines and curricula",
        "version": "1.0.0"
    },
    "basePath": "/",
    "schemes": [
        "http"
    ],
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    },
    "tags": [
        {
            "name": "Authentication"
        },
        {
            "name": "Courses"
        },
        {
            "name": "Users"
        },
        {
            "name": "Semesters"
        },
        {
            "name": "Disciplines"
        },
        {
            "name": "Curricula"
        }
    ],
    "paths": {
        "/health": {
            "get": {
                "summary": "Health check",
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                }
            }
        },
        "/ready": {
            "get": {
                "summary": "Readiness check (pings the database)",
                "responses": {
                    "200": {
                        "description": "Ready"
                    },
                    "503": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/APIError"
                        }
                    }
                }
            }
        },
        "/metrics": {
            "get": {
                "summary": "Prometheus metrics",
                "produces": [
                    "text/plain"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                }
            }
        },
        "/api/auth/login": {
            "post": {
                "tags": [
                    "Authentication"
                ],
                "summary": "Authenticate user",
                "parameters": [
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/LoginRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/LoginResponse"
                        }
                    },
                    "400": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/APIError"
                        }
                    },
                    "401": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/APIError"
                        }
                    },
                    "403": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/APIError"
                        }
                    }
                }
            }
        },
        "/api/courses": {
            "get": {
                "tags": [
                    "Courses"
                ],
                "summary": "List courses",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/CourseResponse"
                            }
                        }
                    }
                }
            },
            "post": {
                "tags": [
                    "Courses"
                ],
                "summary": "Create course",
                "parameters": [
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/CourseRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/CourseResponse"
                        }
                    },
                    "400": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/APIError"
                        }
                    }
                }
            }
        },
        "/api/courses/active": {
            "get": {
                "tags": [
                    "Courses"
                ],
                "summary": "List active courses",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/CourseResponse"
                            }
                        }
                    }
                }
            }
        },
        "/api/courses/search": {
            "get": {
                "tags": [
                    "Courses"
                ],
                "summary": "Search courses by partial name",
                "parameters": [
                    {
                        "name": "name",
                        "in": "query",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/CourseResponse"
                            }
                        }
                    }
                }
            }
        },
        "/api/courses/active/search": {
            "get": {
                "tags": [
                    "Courses"
                ],
                "summary": "Search active courses by partial name",
                "parameters": [
                    {
                        "name": "name",
                        "in": "query",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/CourseResponse"
                            }
                        }
                    }
                }
            }
        },
        "/api/courses/duration/{semesters}": {
            "get": {
                "tags": [
                    "Courses"
                ],
                "summary": "List courses by duration",
                "parameters": [
                    {
                        "name": "semesters",
                        "in": "path",
                        "required": true,
                        "type": "integer"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/CourseResponse"
                            }
                        }
                    }
                }
            }
        },
        "/api/courses/active/duration/{semesters}": {
            "get": {
                "tags": [
                    "Courses"
                ],
                "summary": "List active courses by duration",
                "parameters": [
                    {
                        "name": "semesters",
                        "in": "path",
                        "required": true,
                        "type": "integer"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/CourseResponse"
                            }
                        }
                    }
                }
            }
        },
        "/api/courses/count": {
            "get": {
                "tags": [
                    "Courses"
                ],
                "summary": "Count courses",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/Count"
                        }
                    }
                }
            }
        },
        "/api/courses/count/active": {
            "get": {
                "tags": [
                    "Courses"
                ],
                "summary": "Count active courses",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/Count"
                        }
                    }
                }
            }
        },
        "/api/courses/{id}": {
            "get": {
                "tags": [
                    "Courses"
                ],
                "summary": "Get course by id",
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "integer"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/CourseResponse"
                        }
                    },
                    "404": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/APIError"
                        }
                    }
                }
            },
            "put": {
                "tags": [
                    "Courses"
                ],
                "summary": "Update course",
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "integer"
                    },
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/CourseRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/CourseResponse"
                        }
                    },
                    "400": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/APIError"
                        }
                    },
                    "404": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/APIError"
                        }
                    }
                }
            },
            "delete": {
                "tags": [
                    "Courses"
                ],
                "summary": "Deactivate course",
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "integer"
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "404": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/APIError"
                        }
                    }
                }
            }
        },
        "/api/courses/{id}/activate": {
            "put": {
                "tags": [
                    "Courses"
                ],
                "summary": "Activate course",
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "integer"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/CourseResponse"
                        }
                    },
                    "404": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/APIError"
                        }
                    }
                }
            }
        },
        "/api/courses/{id}/deactivate": {
            "put": {
                "tags": [
                    "Courses"
                ],
                "summary": "Deactivate course",
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "integer"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/CourseResponse"
                        }
                    },
                    "404": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/APIError"
                        }
                    }
                }
            }
        },
        "/api/courses/name/{name}": {
            "get": {
                "tags": [
                    "Courses"
                ],
                "summary": "Get course by exact name",
                "parameters": [
                    {
                        "name": "name",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/CourseResponse"
                        }
                    },
                    "404": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/APIError"
                        }
                    }
                }
            }
        },
        "/api/users": {
            "get": {
                "tags": [
                    "Users"
                ],
                "summary": "List users",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/UserResponse"
                            }
                        }
                    }
                }
            },
            "post": {
                "tags": [
                    "Users"
                ],
                "summary": "Create user",
                "parameters": [
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/CreateUserRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/UserResponse"
                        }
                    },
                    "400": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/APIError"
                        }
                    }
                }
            }
        },
        "/api/users/active": {
            "get": {
                "tags": [
                    "Users"
                ],
                "summary": "List active users",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/UserResponse"
                            }
                        }
                    }
                }
            }
        },
        "/api/users/search": {
            "get": {
                "tags": [
                    "Users"
                ],
                "summary": "Search users by partial name",
                "parameters": [
                    {
                        "name": "name",
                        "in": "query",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/UserResponse"
                            }
                        }
                    }
                }
            }
        },
        "/api/users/role/{role}": {
            "get": {
                "tags": [
                    "Users"
                ],
                "summary": "List users with a role",
                "parameters": [
                    {
                        "name": "role",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/UserResponse"
                            }
                        }
                    }
                }
            }
        },
        "/api/users/active/role/{role}": {
            "get": {
                "tags": [
                    "Users"
                ],
                "summary": "List active users with a role",
                "parameters": [
                    {
                        "name": "role",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/UserResponse"
                            }
                        }
                    }
                }
            }
        },
        "/api/users/count": {
            "get": {
                "tags": [
                    "Users"
                ],
                "summary": "Count users",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/Count"
                        }
                    }
                }
            }
        },
        "/api/users/count/active": {
            "get": {
                "tags": [
                    "Users"
                ],
                "summary": "Count active users",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/Count"
                        }
                    }
                }
            }
        },
        "/api/users/{id}": {
            "get": {
                "tags": [
                    "Users"
                ],
                "summary": "Get user by id",
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "integer"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/UserResponse"
                        }
                    },
                    "404": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/APIError"
                        }
                    }
                }
            },
            "put": {
                "tags": [
                    "Users"
                ],
                "summary": "Update user",
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "integer"
                    },
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/UpdateUserRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/UserResponse"
                        }
                    },
                    "400": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/APIError"
                        }
                    },
                    "404": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/APIError"
                        }
                    }
                }
            },
            "delete": {
                "tags": [
                    "Users"
                ],
                "summary": "Deactivate user",
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "integer"
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "404": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/APIError"
                        }
                    }
                }
            }
        },
        "/api/users/{id}/activate": {
            "put": {
                "tags": [
                    "Users"
                ],
                "summary": "Activate user",
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "integer"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/UserResponse"
                        }
                    },
                    "404": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/APIError"
                        }
                    }
                }
            }
        },
        "/api/users/{id}/deactivate": {
            "put": {
                "tags": [
                    "Users"
                ],
                "summary": "Deactivate user",
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "integer"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/UserResponse"
                        }
                    },
                    "404": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/APIError"
                        }
                    }
                }
            }
        },
        "/api/users/email/{email}": {
            "get": {
                "tags": [
                    "Users"
                ],
                "summary": "Get user by email",
                "parameters": [
                    {
                        "name": "email",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/UserResponse"
                        }
                    },
                    "404": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/APIError"
                        }
                    }
                }
            }
        },
        "/api/semesters": {
            "get": {
                "tags": [
                    "Semesters"
                ],
                "summary": "List semesters",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/SemesterResponse"
                            }
                        }
                    }
                }
            },
            "post": {
                "tags": [
                    "Semesters"
                ],
                "summary": "Create semester",
                "parameters": [
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/SemesterRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/SemesterResponse"
                        }
                    },
                    "400": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/APIError"
                        }
                    }
                }
            }
        },
        "/api/semesters/active": {
            "get": {
                "tags": [
                    "Semesters"
                ],
                "summary": "List active semesters",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/SemesterResponse"
                            }
                        }
                    }
                }
            }
        },
        "/api/semesters/course/{courseId}": {
            "get": {
                "tags": [
                    "Semesters"
                ],
                "summary": "List the semesters of a course",
                "parameters": [
                    {
                        "name": "courseId",
                        "in": "path",
                        "required": true,
                        "type": "integer"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/SemesterResponse"
                            }
                        }
                    }
                }
            }
        },
        "/api/semesters/course/{courseId}/active": {
            "get": {
                "tags": [
                    "Semesters"
                ],
                "summary": "List the active semesters of a course",
                "parameters": [
                    {
                        "name": "courseId",
                        "in": "path",
                        "required": true,
                        "type": "integer"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/SemesterResponse"
                            }
                        }
                    }
                }
            }
        },
        "/api/semesters/{id}": {
            "get": {
                "tags": [
                    "Semesters"
                ],
                "summary": "Get semester by id",
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "integer"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/SemesterResponse"
                        }
                    },
                    "404": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/APIError"
                        }
                    }
                }
            },
            "put": {
                "tags": [
                    "Semesters"
                ],
                "summary": "Update semester",
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "integer"
                    },
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/SemesterRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/SemesterResponse"
                        }
                    },
                    "400": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/APIError"
                        }
                    },
                    "404": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/APIError"
                        }
                    }
                }
            },
            "delete": {
                "tags": [
                    "Semesters"
                ],
                "summary": "Delete semester",
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "integer"
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "404": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/APIError"
                        }
                    }
                }
            }
        },
        "/api/disciplines": {
            "get": {
                "tags": [
                    "Disciplines"
                ],
                "summary": "List disciplines",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/DisciplineResponse"
                            }
                        }
                    }
                }
            },
            "post": {
                "tags": [
                    "Disciplines"
                ],
                "summary": "Create discipline",
                "parameters": [
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/DisciplineRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/DisciplineResponse"
                        }
                    },
                    "400": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/APIError"
                        }
                    }
                }
            }
        },
        "/api/disciplines/active": {
            "get": {
                "tags": [
                    "Disciplines"
                ],
                "summary": "List active disciplines",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/DisciplineResponse"
                            }
                        }
                    }
                }
            }
        },
        "/api/disciplines/search": {
            "get": {
                "tags": [
                    "Disciplines"
                ],
                "summary": "Search disciplines by partial name",
                "parameters": [
                    {
                        "name": "name",
                        "in": "query",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/DisciplineResponse"
                            }
                        }
                    }
                }
            }
        },
        "/api/disciplines/semester/{semesterId}": {
            "get": {
                "tags": [
                    "Disciplines"
                ],
                "summary": "List the disciplines of a semester",
                "parameters": [
                    {
                        "name": "semesterId",
                        "in": "path",
                        "required": true,
                        "type": "integer"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/DisciplineResponse"
                            }
                        }
                    }
                }
            }
        },
        "/api/disciplines/course/{courseId}": {
            "get": {
                "tags": [
                    "Disciplines"
                ],
                "summary": "List disciplines offered in a course",
                "parameters": [
                    {
                        "name": "courseId",
                        "in": "path",
                        "required": true,
                        "type": "integer"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/DisciplineResponse"
                            }
                        }
                    }
                }
            }
        },
        "/api/disciplines/{id}": {
            "get": {
                "tags": [
                    "Disciplines"
                ],
                "summary": "Get discipline by id",
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "integer"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/DisciplineResponse"
                        }
                    },
                    "404": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/APIError"
                        }
                    }
                }
            },
            "put": {
                "tags": [
                    "Disciplines"
                ],
                "summary": "Update discipline",
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "integer"
                    },
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/DisciplineRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/DisciplineResponse"
                        }
                    },
                    "400": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/APIError"
                        }
                    },
                    "404": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/APIError"
                        }
                    }
                }
            },
            "delete": {
                "tags": [
                    "Disciplines"
                ],
                "summary": "Delete discipline",
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "integer"
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "404": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/APIError"
                        }
                    }
                }
            }
        },
        "/api/curricula": {
            "get": {
                "tags": [
                    "Curricula"
                ],
                "summary": "List curriculum entrys",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/CurriculumResponse"
                            }
                        }
                    }
                }
            },
            "post": {
                "tags": [
                    "Curricula"
                ],
                "summary": "Create curriculum entry",
                "parameters": [
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/CurriculumRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/CurriculumResponse"
                        }
                    },
                    "400": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/APIError"
                        }
                    }
                }
            }
        },
        "/api/curricula/student/{studentId}": {
            "get": {
                "tags": [
                    "Curricula"
                ],
                "summary": "List the curriculum visible to a student",
                "parameters": [
                    {
                        "name": "studentId",
                        "in": "path",
                        "required": true,
                        "type": "integer"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/CurriculumResponse"
                            }
                        }
                    }
                }
            }
        },
        "/api/curricula/discipline/{disciplineId}": {
            "get": {
                "tags": [
                    "Curricula"
                ],
                "summary": "List the curriculum entries of a discipline",
                "parameters": [
                    {
                        "name": "disciplineId",
                        "in": "path",
                        "required": true,
                        "type": "integer"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/CurriculumResponse"
                            }
                        }
                    }
                }
            }
        },
        "/api/curricula/course/{courseId}": {
            "get": {
                "tags": [
                    "Curricula"
                ],
                "summary": "List the curriculum entries of a course",
                "parameters": [
                    {
                        "name": "courseId",
                        "in": "path",
                        "required": true,
                        "type": "integer"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/CurriculumResponse"
                            }
                        }
                    }
                }
            }
        },
        "/api/curricula/semester/{semesterId}": {
            "get": {
                "tags": [
                    "Curricula"
                ],
                "summary": "List curriculum entries of a semester",
                "parameters": [
                    {
                        "name": "semesterId",
                        "in": "path",
                        "required": true,
                        "type": "integer"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/CurriculumResponse"
                            }
                        }
                    }
                }
            }
        },
        "/api/curricula/{id}": {
            "get": {
                "tags": [
                    "Curricula"
                ],
                "summary": "Get curriculum entry by id",
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "integer"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/CurriculumResponse"
                        }
                    },
                    "404": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/APIError"
                        }
                    }
                }
            },
            "put": {
                "tags": [
                    "Curricula"
                ],
                "summary": "Update curriculum entry",
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "integer"
                    },
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/CurriculumRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/CurriculumResponse"
                        }
                    },
                    "400": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/APIError"
                        }
                    },
                    "404": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/APIError"
                        }
                    }
                }
            },
            "delete": {
                "tags": [
                    "Curricula"
                ],
                "summary": "Delete curriculum entry",
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "integer"
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "404": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/APIError"
                        }
                    }
                }
            }
        },
        "/api/curricula/matrix/{courseId}": {
            "get": {
                "tags": [
                    "Curricula"
                ],
                "summary": "Curriculum matrix of a course",
                "parameters": [
                    {
                        "name": "courseId",
                        "in": "path",
                        "required": true,
                        "type": "integer"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/CurriculumMatrix"
                        }
                    },
                    "404": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/APIError"
                        }
                    }
                }
            }
        },
        "/api/curricula/matrix/{courseId}/export": {
            "get": {
                "tags": [
                    "Curricula"
                ],
                "summary": "Export the curriculum matrix",
                "parameters": [
                    {
                        "name": "courseId",
                        "in": "path",
                        "required": true,
                        "type": "integer"
                    },
                    {
                        "name": "format",
                        "in": "query",
                        "type": "string",
                        "enum": [
                            "csv",
                            "pdf"
                        ]
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "file"
                        }
                    },
                    "400": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/APIError"
                        }
                    },
                    "404": {
                        "description": "Error",
                        "schema": {
                            "$ref": "#/definitions/APIError"
                        }
                    }
                },
                "produces": [
                    "text/csv",
                    "application/pdf"
                ]
            }
        }
    },
    "definitions": {
        "CourseRequest": {
            "type": "object",
            "required": [
                "name",
                "totalHours",
                "durationSemesters"
            ],
            "properties": {
                "name": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                },
                "totalHours": {
                    "type": "integer"
                },
                "durationSemesters": {
                    "type": "integer"
                },
                "active": {
                    "type": "boolean"
                }
            }
        },
        "CourseResponse": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer"
                },
                "name": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                },
                "totalHours": {
                    "type": "integer"
                },
                "durationSemesters": {
                    "type": "integer"
                },
                "active": {
                    "type": "boolean"
                },
                "createdAt": {
                    "type": "string",
                    "format": "date-time"
                },
                "updatedAt": {
                    "type": "string",
                    "format": "date-time"
                }
            }
        },
        "CreateUserRequest": {
            "type": "object",
            "required": [
                "name",
                "email",
                "password",
                "role"
            ],
            "properties": {
                "name": {
                    "type": "string"
                },
                "email": {
                    "type": "string"
                },
                "password": {
                    "type": "string"
                },
                "role": {
                    "type": "string",
                    "enum": [
                        "ADMIN",
                        "COORDINATOR",
                        "PROFESSOR",
                        "STUDENT"
                    ]
                },
                "active": {
                    "type": "boolean"
                }
            }
        },
        "UpdateUserRequest": {
            "type": "object",
            "required": [
                "name",
                "email",
                "role"
            ],
            "properties": {
                "name": {
                    "type": "string"
                },
                "email": {
                    "type": "string"
                },
                "password": {
                    "type": "string"
                },
                "role": {
                    "type": "string",
                    "enum": [
                        "ADMIN",
                        "COORDINATOR",
                        "PROFESSOR",
                        "STUDENT"
                    ]
                },
                "active": {
                    "type": "boolean"
                }
            }
        },
        "UserResponse": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer"
                },
                "name": {
                    "type": "string"
                },
                "email": {
                    "type": "string"
                },
                "role": {
                    "type": "string",
                    "enum": [
                        "ADMIN",
                        "COORDINATOR",
                        "PROFESSOR",
                        "STUDENT"
                    ]
                },
                "active": {
                    "type": "boolean"
                },
                "createdAt": {
                    "type": "string",
                    "format": "date-time"
                },
                "updatedAt": {
                    "type": "string",
                    "format": "date-time"
                }
            }
        },
        "SemesterRequest": {
            "type": "object",
            "required": [
                "number",
                "courseId"
            ],
            "properties": {
                "number": {
                    "type": "integer"
                },
                "courseId": {
                    "type": "integer"
                },
                "active": {
                    "type": "boolean"
                }
            }
        },
        "SemesterResponse": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer"
                },
                "number": {
                    "type": "integer"
                },
                "courseId": {
                    "type": "integer"
                },
                "courseName": {
                    "type": "string"
                },
                "active": {
                    "type": "boolean"
                },
                "createdAt": {
                    "type": "string",
                    "format": "date-time"
                },
                "updatedAt": {
                    "type": "string",
                    "format": "date-time"
                }
            }
        },
        "DisciplineRequest": {
            "type": "object",
            "required": [
                "name",
                "workload",
                "semesterId"
            ],
            "properties": {
                "name": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                },
                "workload": {
                    "type": "integer"
                },
                "semesterId": {
                    "type": "integer"
                },
                "active": {
                    "type": "boolean"
                }
            }
        },
        "DisciplineResponse": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer"
                },
                "name": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                },
                "workload": {
                    "type": "integer"
                },
                "semesterId": {
                    "type": "integer"
                },
                "semesterNumber": {
                    "type": "integer"
                },
                "courseId": {
                    "type": "integer"
                },
                "courseName": {
                    "type": "string"
                },
                "active": {
                    "type": "boolean"
                },
                "createdAt": {
                    "type": "string",
                    "format": "date-time"
                },
                "updatedAt": {
                    "type": "string",
                    "format": "date-time"
                }
            }
        },
        "CurriculumRequest": {
            "type": "object",
            "required": [
                "courseId",
                "disciplineId"
            ],
            "properties": {
                "courseId": {
                    "type": "integer"
                },
                "disciplineId": {
                    "type": "integer"
                },
                "active": {
                    "type": "boolean"
                }
            }
        },
        "CurriculumResponse": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer"
                },
                "courseId": {
                    "type": "integer"
                },
                "courseName": {
                    "type": "string"
                },
                "disciplineId": {
                    "type": "integer"
                },
                "disciplineName": {
                    "type": "string"
                },
                "disciplineWorkload": {
                    "type": "integer"
                },
                "semesterId": {
                    "type": "integer"
                },
                "semesterNumber": {
                    "type": "integer"
                },
                "active": {
                    "type": "boolean"
                },
                "createdAt": {
                    "type": "string",
                    "format": "date-time"
                },
                "updatedAt": {
                    "type": "string",
                    "format": "date-time"
                }
            }
        },
        "MatrixDiscipline": {
            "type": "object",
            "properties": {
                "curriculumId": {
                    "type": "integer"
                },
                "disciplineId": {
                    "type": "integer"
                },
                "name": {
                    "type": "string"
                },
                "workload": {
                    "type": "integer"
                }
            }
        },
        "MatrixSemester": {
            "type": "object",
            "properties": {
                "semesterId": {
                    "type": "integer"
                },
                "number": {
                    "type": "integer"
                },
                "workload": {
                    "type": "integer"
                },
                "disciplines": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/MatrixDiscipline"
                    }
                }
            }
        },
        "CurriculumMatrix": {
            "type": "object",
            "properties": {
                "courseId": {
                    "type": "integer"
                },
                "courseName": {
                    "type": "string"
                },
                "totalWorkload": {
                    "type": "integer"
                },
                "semesters": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/MatrixSemester"
                    }
                }
            }
        },
        "LoginRequest": {
            "type": "object",
            "required": [
                "email",
                "password"
            ],
            "properties": {
                "email": {
                    "type": "string"
                },
                "password": {
                    "type": "string"
                }
            }
        },
        "LoginResponse": {
            "type": "object",
            "properties": {
                "accessToken": {
                    "type": "string"
                },
                "tokenType": {
                    "type": "string"
                },
                "expiresIn": {
                    "type": "integer"
                },
                "user": {
                    "$ref": "#/definitions/UserResponse"
                }
            }
        },
        "Count": {
            "type": "object",
            "properties": {
                "count": {
                    "type": "integer"
                }
            }
        },
        "APIError": {
            "type": "object",
            "properties": {
                "code": {
                    "type": "string"
                },
                "error": {
                    "type": "string"
                }
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
